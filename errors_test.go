// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindConfig, "config"},
		{KindTransport, "transport"},
		{KindAuth, "auth"},
		{KindClassification, "classification"},
		{KindController, "controller"},
		{ErrorKind(99), "unknown(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestClientError_Error(t *testing.T) {
	plain := configError("login", "username must be set")
	if !strings.Contains(plain.Error(), "login") || !strings.Contains(plain.Error(), "config") {
		t.Errorf("Error() = %q, want operation and kind", plain.Error())
	}

	underlying := errors.New("connection refused")
	wrapped := transportError("send", underlying)
	if !strings.Contains(wrapped.Error(), "connection refused") {
		t.Errorf("Error() = %q, want underlying message", wrapped.Error())
	}
	if !errors.Is(wrapped, underlying) {
		t.Error("errors.Is(wrapped, underlying) = false, want true")
	}
}

func TestIsKind(t *testing.T) {
	transport := transportError("send", errors.New("refused"))
	doubleWrapped := fmt.Errorf("sending request: %w", transport)

	tests := []struct {
		name string
		err  error
		kind ErrorKind
		want bool
	}{
		{name: "direct match", err: transport, kind: KindTransport, want: true},
		{name: "direct mismatch", err: transport, kind: KindAuth, want: false},
		{name: "wrapped match", err: doubleWrapped, kind: KindTransport, want: true},
		{name: "wrapped mismatch", err: doubleWrapped, kind: KindConfig, want: false},
		{name: "nil error", err: nil, kind: KindTransport, want: false},
		{name: "plain error", err: errors.New("boom"), kind: KindTransport, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorConstructors_SetKind(t *testing.T) {
	tests := []struct {
		name string
		err  *ClientError
		kind ErrorKind
	}{
		{name: "config", err: configError("op", "bad %s", "value"), kind: KindConfig},
		{name: "auth", err: authError("op", "no token"), kind: KindAuth},
		{name: "classification", err: classificationError("op", "verb not set"), kind: KindClassification},
		{name: "controller", err: controllerError("op", "status %d", 500), kind: KindController},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Operation != "op" {
				t.Errorf("Operation = %q, want op", tt.err.Operation)
			}
		})
	}
}
