package export

import (
	"encoding/json"
	"io"

	"github.com/codeveda/codeveda/internal"
)

// JSONExporter exports sessions in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a session to JSON format
func (e *JSONExporter) Export(session *internal.ChatSession, w io.Writer) error {
	view := *session
	view.Messages = session.WithoutTyping()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(&view)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
