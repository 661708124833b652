// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"strings"
	"testing"
)

func TestValidateVerb(t *testing.T) {
	tests := []struct {
		name    string
		verb    string
		wantErr bool
	}{
		{name: "get", verb: VerbGet, wantErr: false},
		{name: "post", verb: VerbPost, wantErr: false},
		{name: "put", verb: VerbPut, wantErr: false},
		{name: "delete", verb: VerbDelete, wantErr: false},
		{name: "patch unsupported", verb: "PATCH", wantErr: true},
		{name: "lowercase rejected", verb: "get", wantErr: true},
		{name: "empty rejected", verb: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVerb(tt.verb)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVerb(%q) error = %v, wantErr %v", tt.verb, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.verb) && tt.verb != "" {
				t.Errorf("ValidateVerb(%q) error %q should name the rejected verb", tt.verb, err.Error())
			}
		})
	}
}

func TestValidVerbs_CoverAllConstants(t *testing.T) {
	for _, verb := range []string{VerbDelete, VerbGet, VerbPost, VerbPut} {
		if err := ValidateVerb(verb); err != nil {
			t.Errorf("ValidateVerb(%q) = %v, want nil", verb, err)
		}
	}
	if len(ValidVerbs) != 4 {
		t.Errorf("len(ValidVerbs) = %d, want 4", len(ValidVerbs))
	}
}
