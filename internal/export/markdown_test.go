package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/codeveda/codeveda/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	session := internal.CreateTestSession("Markdown test")

	var buf bytes.Buffer
	exporter := &MarkdownExporter{}
	if err := exporter.Export(session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"# Markdown test",
		"**ID:** " + session.ID,
		"## Messages",
		"**user:**",
		"**bot:**",
		"Hello, how are you?",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestMarkdownExporter_ImageAndTranslation(t *testing.T) {
	session := internal.NewChatSession()
	img := internal.NewMessage(internal.SenderBot, "Here's the image")
	img.ImagePrompt = "a red fox"
	img.ImageURL = "data:image/png;base64,Zm94"
	translated := internal.NewMessage(internal.SenderBot, "¡Hola!")
	translated.OriginalText = "Hello!"
	session.Messages = append(session.Messages, img, translated)

	var buf bytes.Buffer
	exporter := &MarkdownExporter{}
	if err := exporter.Export(session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "*Image prompt:* a red fox") {
		t.Error("output missing the image prompt line")
	}
	if !strings.Contains(output, "![generated image](data:image/png;base64,Zm94)") {
		t.Error("output missing the image link")
	}
	if !strings.Contains(output, "*Original:* Hello!") {
		t.Error("output missing the original text line")
	}
}

func TestEscapeMarkdown(t *testing.T) {
	got := escapeMarkdown("**bold** text")
	if !strings.Contains(got, `\*\*`) {
		t.Errorf("escapeMarkdown() = %v, want escaped asterisks", got)
	}

	code := "```\n**not escaped**\n```"
	if escapeMarkdown(code) != code {
		t.Error("code blocks should pass through unescaped")
	}
}
