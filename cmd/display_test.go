package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestWrapText(t *testing.T) {
	short := "short line"
	if got := wrapText(short, 80); got != short {
		t.Errorf("wrapText() = %v, want unchanged", got)
	}

	long := strings.Repeat("word ", 30)
	wrapped := wrapText(strings.TrimSpace(long), 20)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
	}

	multi := "line one\nline two"
	if got := wrapText(multi, 80); got != multi {
		t.Errorf("wrapText() = %v, want newlines preserved", got)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	if got := formatRelativeTime(time.Time{}); got != "—" {
		t.Errorf("formatRelativeTime(zero) = %v, want —", got)
	}

	recent := time.Now().Add(-time.Hour)
	if got := formatRelativeTime(recent); !strings.HasPrefix(got, "Today") {
		t.Errorf("formatRelativeTime(1h ago) = %v, want Today prefix", got)
	}

	old := time.Now().Add(-2 * 365 * 24 * time.Hour)
	if got := formatRelativeTime(old); !strings.Contains(got, "-") {
		t.Errorf("formatRelativeTime(2y ago) = %v, want full date", got)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID() = %v, want 01234567", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %v, want abc", got)
	}
}
