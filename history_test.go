// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

import (
	"fmt"
	"testing"
)

func TestHistory_Empty(t *testing.T) {
	var h history
	if h.len() != 0 {
		t.Errorf("len() = %d, want 0", h.len())
	}
	if got := h.list(); len(got) != 0 {
		t.Errorf("list() = %v, want empty", got)
	}
}

func TestHistory_OrderMostRecentFirst(t *testing.T) {
	var h history
	h.add(200, "https://10.1.1.1/api/first")
	h.add(404, "https://10.1.1.1/api/second")
	h.add(500, "https://10.1.1.1/api/third")

	got := h.list()
	if len(got) != 3 {
		t.Fatalf("list() length = %d, want 3", len(got))
	}
	wantCodes := []int{500, 404, 200}
	for i, want := range wantCodes {
		if got[i].StatusCode != want {
			t.Errorf("list()[%d].StatusCode = %d, want %d", i, got[i].StatusCode, want)
		}
	}
	if got[0].Path != "https://10.1.1.1/api/third" {
		t.Errorf("list()[0].Path = %q, want the most recent call", got[0].Path)
	}
}

func TestHistory_OverwritesOldestWhenFull(t *testing.T) {
	var h history
	total := HistoryCapacity + 7
	for i := 0; i < total; i++ {
		h.add(200+i, fmt.Sprintf("https://10.1.1.1/api/call/%d", i))
	}

	if h.len() != HistoryCapacity {
		t.Fatalf("len() = %d, want %d", h.len(), HistoryCapacity)
	}

	got := h.list()
	if len(got) != HistoryCapacity {
		t.Fatalf("list() length = %d, want %d", len(got), HistoryCapacity)
	}

	// Most recent entry is the last one added.
	if got[0].StatusCode != 200+total-1 {
		t.Errorf("list()[0].StatusCode = %d, want %d", got[0].StatusCode, 200+total-1)
	}
	// Oldest surviving entry is the one added HistoryCapacity calls ago.
	oldest := got[HistoryCapacity-1]
	if oldest.StatusCode != 200+total-HistoryCapacity {
		t.Errorf("oldest StatusCode = %d, want %d", oldest.StatusCode, 200+total-HistoryCapacity)
	}
}

func TestHistory_ExactlyFull(t *testing.T) {
	var h history
	for i := 0; i < HistoryCapacity; i++ {
		h.add(200, fmt.Sprintf("https://10.1.1.1/api/call/%d", i))
	}
	got := h.list()
	if len(got) != HistoryCapacity {
		t.Fatalf("list() length = %d, want %d", len(got), HistoryCapacity)
	}
	if got[HistoryCapacity-1].Path != "https://10.1.1.1/api/call/0" {
		t.Errorf("oldest Path = %q, want call/0", got[HistoryCapacity-1].Path)
	}
}
