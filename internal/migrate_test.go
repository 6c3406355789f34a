package internal

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDetectSlotFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want SlotFormat
	}{
		{"empty array", `[]`, FormatEmpty},
		{"current sessions", `[{"id":"s1","title":"T","messages":[],"lastModified":"2024-01-01T00:00:00Z"}]`, FormatCurrent},
		{"legacy nested", `[[{"id":"m1","sender":"user","text":"hi","timestamp":"2024-01-01T00:00:00Z"}]]`, FormatLegacyNested},
		{"legacy flat", `[{"id":"m1","sender":"user","text":"hi","timestamp":"2024-01-01T00:00:00Z"}]`, FormatLegacyFlat},
		{"not json", `{{{`, FormatUnknown},
		{"not an array", `{"id":"s1"}`, FormatUnknown},
		{"array of numbers", `[1,2,3]`, FormatUnknown},
		{"object without markers", `[{"id":"x"}]`, FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectSlotFormat([]byte(tt.raw))
			if got != tt.want {
				t.Errorf("DetectSlotFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCurrentSessionsRoundTrip(t *testing.T) {
	session := CreateTestSession("Round trip")
	data, err := json.Marshal([]*ChatSession{session})
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}

	parsed, err := ParseCurrentSessions(data)
	if err != nil {
		t.Fatalf("ParseCurrentSessions() error = %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("session count = %v, want 1", len(parsed))
	}
	if parsed[0].ID != session.ID {
		t.Errorf("ID = %v, want %v", parsed[0].ID, session.ID)
	}
	if parsed[0].Title != "Round trip" {
		t.Errorf("Title = %v, want Round trip", parsed[0].Title)
	}
	if len(parsed[0].Messages) != len(session.Messages) {
		t.Errorf("message count = %v, want %v", len(parsed[0].Messages), len(session.Messages))
	}
}

func TestParseLegacyNested(t *testing.T) {
	base := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	raw := `[
		[
			{"id":"m1","sender":"user","text":"First question","timestamp":"2024-02-01T09:00:00Z"},
			{"id":"m2","sender":"bot","text":"First answer","timestamp":"2024-02-01T09:01:00Z"}
		],
		[
			{"id":"m3","sender":"bot","text":"Hello there","timestamp":"2024-02-02T09:00:00Z"}
		]
	]`

	sessions, err := ParseLegacyNested([]byte(raw))
	if err != nil {
		t.Fatalf("ParseLegacyNested() error = %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("session count = %v, want 2", len(sessions))
	}

	first := sessions[0]
	if first.ID == "" {
		t.Error("migrated session should get a fresh id")
	}
	if first.Title != "First question" {
		t.Errorf("Title = %v, want First question", first.Title)
	}
	if !first.LastModified.Equal(base.Add(time.Minute)) {
		t.Errorf("LastModified = %v, want %v", first.LastModified, base.Add(time.Minute))
	}

	second := sessions[1]
	if second.Title != "Chat Feb 2 09:00" {
		t.Errorf("Title = %v, want timestamp-derived title", second.Title)
	}
}

func TestParseLegacyFlatDropsTyping(t *testing.T) {
	raw := `[
		{"id":"m1","sender":"user","text":"hi","timestamp":"2024-02-01T09:00:00Z"},
		{"id":"m2","sender":"bot","text":"","timestamp":"2024-02-01T09:00:30Z","isTyping":true},
		{"id":"m3","sender":"bot","text":"hello","timestamp":"2024-02-01T09:01:00Z"}
	]`

	session, err := ParseLegacyFlat([]byte(raw))
	if err != nil {
		t.Fatalf("ParseLegacyFlat() error = %v", err)
	}
	if len(session.Messages) != 2 {
		t.Fatalf("message count = %v, want 2 (typing placeholder dropped)", len(session.Messages))
	}
	for _, m := range session.Messages {
		if m.IsTyping {
			t.Error("typing placeholder should not survive migration")
		}
	}
}

func TestParseLegacyFlatMalformed(t *testing.T) {
	if _, err := ParseLegacyFlat([]byte(`{"not":"an array"}`)); err == nil {
		t.Error("ParseLegacyFlat() should fail on non-array input")
	}
}
