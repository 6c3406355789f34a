package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/codeveda/codeveda/internal"
)

// JSONLExporter exports sessions in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a session to JSONL format
func (e *JSONLExporter) Export(session *internal.ChatSession, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range session.WithoutTyping() {
		obj := map[string]interface{}{
			"sender": msg.Sender,
			"text":   msg.Text,
		}

		if !msg.Timestamp.IsZero() {
			obj["timestamp"] = msg.Timestamp.Format(time.RFC3339)
		}
		if msg.ImagePrompt != "" {
			obj["imagePrompt"] = msg.ImagePrompt
		}
		if msg.OriginalText != "" {
			obj["originalText"] = msg.OriginalText
		}

		// Encode to single line
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
