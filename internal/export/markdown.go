package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/codeveda/codeveda/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export exports a session to Markdown format
func (e *MarkdownExporter) Export(session *internal.ChatSession, w io.Writer) error {
	messages := session.WithoutTyping()

	// Header
	_, _ = fmt.Fprintf(w, "# %s\n\n", session.Title)
	_, _ = fmt.Fprintf(w, "**ID:** %s  \n", session.ID)
	if !session.LastModified.IsZero() {
		_, _ = fmt.Fprintf(w, "**Last modified:** %s  \n", session.LastModified.Format(time.RFC3339))
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(messages))

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Messages\n\n")

	// Messages
	for i, msg := range messages {
		timestamp := ""
		if !msg.Timestamp.IsZero() {
			timestamp = fmt.Sprintf(" (%s)", msg.Timestamp.Format(time.RFC3339))
		}

		content := escapeMarkdown(msg.Text)

		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Sender, timestamp, content)

		if msg.ImagePrompt != "" {
			_, _ = fmt.Fprintf(w, "*Image prompt:* %s\n\n", escapeMarkdown(msg.ImagePrompt))
		}
		if msg.ImageURL != "" {
			_, _ = fmt.Fprintf(w, "![generated image](%s)\n\n", msg.ImageURL)
		}
		if msg.OriginalText != "" {
			_, _ = fmt.Fprintf(w, "*Original:* %s\n\n", escapeMarkdown(msg.OriginalText))
		}

		// Add horizontal rule after each message (except the last one)
		if i < len(messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes markdown special characters
func escapeMarkdown(text string) string {
	// Basic escaping - preserve code blocks
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			// Escape markdown syntax outside code blocks
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
