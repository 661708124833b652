// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"context"
	"reflect"
	"testing"
)

func TestNewAPIToGUI_Validation(t *testing.T) {
	server := templateServer(t)
	defer server.Close()
	restSend := newTestRestSend(t, server)

	if _, err := NewAPIToGUI(nil, "Easy_Fabric"); !IsKind(err, KindConfig) {
		t.Errorf("NewAPIToGUI(nil, name) error = %v, want KindConfig", err)
	}
	if _, err := NewAPIToGUI(restSend, ""); !IsKind(err, KindConfig) {
		t.Errorf("NewAPIToGUI(restSend, \"\") error = %v, want KindConfig", err)
	}
}

func TestAPIToGUI_Commit(t *testing.T) {
	server := templateServer(t)
	defer server.Close()

	mapper, err := NewAPIToGUI(newTestRestSend(t, server), "Easy_Fabric")
	if err != nil {
		t.Fatalf("NewAPIToGUI() error = %v", err)
	}
	if mapper.TemplateName() != "Easy_Fabric" {
		t.Errorf("TemplateName() = %q, want Easy_Fabric", mapper.TemplateName())
	}

	if err := mapper.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	names, err := mapper.ParameterNames()
	if err != nil {
		t.Fatalf("ParameterNames() error = %v", err)
	}
	// Internal, Hidden-section, _PREV, and DCNM_ID parameters are excluded.
	want := []string{"BGP_AS", "FABRIC_TYPE", "REPLICATION_MODE"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ParameterNames() = %v, want %v", names, want)
	}

	info, err := mapper.Info("BGP_AS")
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if info.DisplayName != "BGP ASN" {
		t.Errorf("Info(BGP_AS).DisplayName = %q, want BGP ASN", info.DisplayName)
	}
	if info.Section != "General Parameters" {
		t.Errorf("Info(BGP_AS).Section = %q, want General Parameters", info.Section)
	}
	if info.Description != "1-4294967295 | 1-65535.0-65535" {
		t.Errorf("Info(BGP_AS).Description = %q", info.Description)
	}

	// Excluded parameters yield a zero value, not an error.
	excluded, err := mapper.Info("BGP_AS_PREV")
	if err != nil {
		t.Fatalf("Info(excluded) error = %v", err)
	}
	if excluded != (ParamGUI{}) {
		t.Errorf("Info(BGP_AS_PREV) = %+v, want zero value", excluded)
	}

	mapping, err := mapper.Mapping()
	if err != nil {
		t.Fatalf("Mapping() error = %v", err)
	}
	if len(mapping) != len(want) {
		t.Errorf("len(Mapping()) = %d, want %d", len(mapping), len(want))
	}
}

func TestAPIToGUI_AccessorsBeforeCommit(t *testing.T) {
	server := templateServer(t)
	defer server.Close()

	mapper, err := NewAPIToGUI(newTestRestSend(t, server), "Easy_Fabric")
	if err != nil {
		t.Fatalf("NewAPIToGUI() error = %v", err)
	}

	if _, err := mapper.ParameterNames(); !IsKind(err, KindConfig) {
		t.Errorf("ParameterNames() before Commit error = %v, want KindConfig", err)
	}
	if _, err := mapper.Info("BGP_AS"); !IsKind(err, KindConfig) {
		t.Errorf("Info() before Commit error = %v, want KindConfig", err)
	}
	if _, err := mapper.Mapping(); !IsKind(err, KindConfig) {
		t.Errorf("Mapping() before Commit error = %v, want KindConfig", err)
	}
}

func TestAPIToGUI_CommitUnknownTemplate(t *testing.T) {
	server := templateServer(t)
	defer server.Close()

	mapper, err := NewAPIToGUI(newTestRestSend(t, server), "No_Such_Template")
	if err != nil {
		t.Fatalf("NewAPIToGUI() error = %v", err)
	}

	err = mapper.Commit(context.Background())
	if err == nil {
		t.Fatal("Commit() error = nil, want error for unknown template")
	}
	if !IsKind(err, KindController) {
		t.Errorf("error kind = %v, want KindController", err)
	}
	if _, err := mapper.ParameterNames(); err == nil {
		t.Error("ParameterNames() after failed Commit error = nil, want error")
	}
}

func TestAPIToGUI_MappingReturnsCopy(t *testing.T) {
	server := templateServer(t)
	defer server.Close()

	mapper, err := NewAPIToGUI(newTestRestSend(t, server), "Easy_Fabric")
	if err != nil {
		t.Fatalf("NewAPIToGUI() error = %v", err)
	}
	if err := mapper.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	mapping, err := mapper.Mapping()
	if err != nil {
		t.Fatalf("Mapping() error = %v", err)
	}
	mapping["BGP_AS"] = ParamGUI{DisplayName: "mutated"}

	fresh, err := mapper.Info("BGP_AS")
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if fresh.DisplayName == "mutated" {
		t.Error("mutating the returned map leaked into internal state")
	}
}

func TestSkipParameter(t *testing.T) {
	tests := []struct {
		name   string
		detail ParamDetail
		want   bool
	}{
		{
			name:   "visible parameter kept",
			detail: ParamDetail{Name: "BGP_AS", Section: "General Parameters"},
			want:   false,
		},
		{
			name:   "internal skipped",
			detail: ParamDetail{Name: "ENABLE_EVPN", Internal: true},
			want:   true,
		},
		{
			name:   "hidden section skipped",
			detail: ParamDetail{Name: "MSO_SITE_GROUP_NAME", Section: "Hidden"},
			want:   true,
		},
		{
			name:   "prev bookkeeping skipped",
			detail: ParamDetail{Name: "BGP_AS_PREV"},
			want:   true,
		},
		{
			name:   "controller id skipped",
			detail: ParamDetail{Name: "ABC_DCNM_ID_XYZ"},
			want:   true,
		},
		{
			name:   "hidden as substring of another section kept",
			detail: ParamDetail{Name: "X", Section: "Not Hidden"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skipParameter(tt.detail); got != tt.want {
				t.Errorf("skipParameter(%+v) = %v, want %v", tt.detail, got, tt.want)
			}
		})
	}
}
