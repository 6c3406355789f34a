package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/codeveda/codeveda/internal"
)

func TestJSONLExporter_Export(t *testing.T) {
	session := internal.CreateTestSession("jsonl test")

	var buf bytes.Buffer
	exporter := &JSONLExporter{}
	if err := exporter.Export(session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %v, want 3", len(lines))
	}

	// Every line must be valid JSON on its own
	for i, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}

	if !strings.Contains(lines[1], `"sender":"user"`) {
		t.Errorf("second line = %v, want the user message", lines[1])
	}
	if !strings.Contains(lines[1], `"text":"Hello, how are you?"`) {
		t.Errorf("second line = %v, want the user text", lines[1])
	}
}

func TestJSONLExporter_SkipsTyping(t *testing.T) {
	session := internal.CreateTestSession("typing test")
	session.Messages = append(session.Messages, internal.NewTypingMessage())

	var buf bytes.Buffer
	exporter := &JSONLExporter{}
	if err := exporter.Export(session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Errorf("line count = %v, want 3 (typing placeholder skipped)", len(lines))
	}
}
