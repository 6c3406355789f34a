package export

import (
	"io"
	"time"

	"github.com/codeveda/codeveda/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports sessions in YAML format
type YAMLExporter struct{}

// yamlSession mirrors ChatSession with explicit yaml field names.
type yamlSession struct {
	ID           string        `yaml:"id"`
	Title        string        `yaml:"title"`
	LastModified string        `yaml:"last_modified,omitempty"`
	Messages     []yamlMessage `yaml:"messages"`
}

type yamlMessage struct {
	ID             string `yaml:"id"`
	Sender         string `yaml:"sender"`
	Text           string `yaml:"text"`
	Timestamp      string `yaml:"timestamp,omitempty"`
	ImagePrompt    string `yaml:"image_prompt,omitempty"`
	ImageURL       string `yaml:"image_url,omitempty"`
	OriginalText   string `yaml:"original_text,omitempty"`
	TranslatedText string `yaml:"translated_text,omitempty"`
}

// Export exports a session to YAML format
func (e *YAMLExporter) Export(session *internal.ChatSession, w io.Writer) error {
	view := yamlSession{
		ID:    session.ID,
		Title: session.Title,
	}
	if !session.LastModified.IsZero() {
		view.LastModified = session.LastModified.Format(time.RFC3339)
	}
	for _, msg := range session.WithoutTyping() {
		ym := yamlMessage{
			ID:             msg.ID,
			Sender:         msg.Sender,
			Text:           msg.Text,
			ImagePrompt:    msg.ImagePrompt,
			ImageURL:       msg.ImageURL,
			OriginalText:   msg.OriginalText,
			TranslatedText: msg.TranslatedText,
		}
		if !msg.Timestamp.IsZero() {
			ym.Timestamp = msg.Timestamp.Format(time.RFC3339)
		}
		view.Messages = append(view.Messages, ym)
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(&view)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
