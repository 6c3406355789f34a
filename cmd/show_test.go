package cmd

import (
	"testing"

	"github.com/codeveda/codeveda/internal"
)

func TestFindSession(t *testing.T) {
	sessions := []*internal.ChatSession{
		{ID: "aaaa1111-0000-0000-0000-000000000001", Title: "First"},
		{ID: "aaaa2222-0000-0000-0000-000000000002", Title: "Second"},
		{ID: "bbbb3333-0000-0000-0000-000000000003", Title: "Third"},
	}

	// Exact match
	got, err := findSession(sessions, sessions[1].ID)
	if err != nil {
		t.Fatalf("findSession() error = %v", err)
	}
	if got.Title != "Second" {
		t.Errorf("findSession() = %v, want Second", got.Title)
	}

	// Unique prefix
	got, err = findSession(sessions, "bbbb")
	if err != nil {
		t.Fatalf("findSession() error = %v", err)
	}
	if got.Title != "Third" {
		t.Errorf("findSession() = %v, want Third", got.Title)
	}

	// Ambiguous prefix
	if _, err := findSession(sessions, "aaaa"); err == nil {
		t.Error("ambiguous prefix should fail")
	}

	// Not found
	if _, err := findSession(sessions, "zzzz"); err == nil {
		t.Error("unknown id should fail")
	}
}
