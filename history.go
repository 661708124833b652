// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Allen Robel

package nd

// HistoryCapacity is the fixed number of calls retained in a client's
// diagnostic history. Older entries are silently dropped.
const HistoryCapacity = 50

// HistoryEntry records the outcome of a single REST call
type HistoryEntry struct {
	// StatusCode is the HTTP status code of the call
	StatusCode int

	// Path is the request URL of the call
	Path string
}

// history is a fixed-capacity ring buffer of call outcomes. It is a
// diagnostic trail, not a correctness-bearing structure: entries are
// index-wrapped into a fixed array and the oldest are overwritten once
// the buffer is full.
type history struct {
	entries [HistoryCapacity]HistoryEntry
	next    int
	count   int
}

// add records an entry, overwriting the oldest once the buffer is full.
func (h *history) add(statusCode int, path string) {
	h.entries[h.next] = HistoryEntry{StatusCode: statusCode, Path: path}
	h.next = (h.next + 1) % HistoryCapacity
	if h.count < HistoryCapacity {
		h.count++
	}
}

// len returns the number of recorded entries, at most HistoryCapacity.
func (h *history) len() int {
	return h.count
}

// list returns the recorded entries, most recent first.
func (h *history) list() []HistoryEntry {
	out := make([]HistoryEntry, 0, h.count)
	for i := 1; i <= h.count; i++ {
		// Walk backwards from the most recently written slot.
		idx := (h.next - i + HistoryCapacity) % HistoryCapacity
		out = append(out, h.entries[idx])
	}
	return out
}
