package internal

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who produced a message.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// WelcomeText is the synthetic greeting seeded into every new session.
const WelcomeText = "Welcome to CodeVeda AI! I'm your futuristic AI assistant. How can I help you today?"

// Message represents one chat turn. Messages are immutable once created;
// the only removal the controller performs is the typing placeholder's.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"` // "user" or "bot"
	Timestamp time.Time `json:"timestamp"`

	// Set only on bot messages produced by the image path.
	ImagePrompt string `json:"imagePrompt,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`

	// Set only on bot messages produced by the translation path. When both
	// are present, Text holds the translated value.
	OriginalText   string `json:"originalText,omitempty"`
	TranslatedText string `json:"translatedText,omitempty"`

	// True only for the single transient in-flight placeholder.
	// Never persisted as true.
	IsTyping bool `json:"isTyping,omitempty"`
}

// ChatSession is a named, timestamped ordered list of messages.
type ChatSession struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Messages     []Message `json:"messages"`
	LastModified time.Time `json:"lastModified"`
}

// NewMessage creates a message with a fresh id and timestamp. The id is the
// creation time in millis plus a random suffix, so ids sort roughly
// chronologically and cannot collide within the same millisecond.
func NewMessage(sender, text string) Message {
	now := time.Now()
	return Message{
		ID:        fmt.Sprintf("%d_%s", now.UnixMilli(), randomSuffix()),
		Text:      text,
		Sender:    sender,
		Timestamp: now,
	}
}

// NewTypingMessage creates the transient typing placeholder.
func NewTypingMessage() Message {
	m := NewMessage(SenderBot, "")
	m.IsTyping = true
	return m
}

// NewWelcomeMessage creates the synthetic bot greeting.
func NewWelcomeMessage() Message {
	return NewMessage(SenderBot, WelcomeText)
}

// NewChatSession creates a session seeded with the welcome message.
func NewChatSession() *ChatSession {
	welcome := NewWelcomeMessage()
	return &ChatSession{
		ID:           uuid.NewString(),
		Title:        defaultTitle(welcome.Timestamp),
		Messages:     []Message{welcome},
		LastModified: welcome.Timestamp,
	}
}

func defaultTitle(t time.Time) string {
	return "Chat " + t.Format("Jan 2 15:04")
}

func randomSuffix() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// Nanosecond clock fallback; the millisecond id prefix still
		// keeps ids apart across calls.
		return fmt.Sprintf("%x", time.Now().UnixNano()&0xffffffff)
	}
	return hex.EncodeToString(buf)
}

// Touch updates LastModified after a mutation to Messages or Title.
func (s *ChatSession) Touch() {
	s.LastModified = time.Now()
}

// WithoutTyping returns the session's messages with any typing placeholder
// excluded. This is what gets persisted, exported and sent as history.
func (s *ChatSession) WithoutTyping() []Message {
	out := make([]Message, 0, len(s.Messages))
	for _, m := range s.Messages {
		if m.IsTyping {
			continue
		}
		out = append(out, m)
	}
	return out
}

// IsUntouchedWelcome reports whether the session still consists solely of
// the synthetic welcome message.
func (s *ChatSession) IsUntouchedWelcome() bool {
	return len(s.Messages) == 1 &&
		s.Messages[0].Sender == SenderBot &&
		s.Messages[0].Text == WelcomeText
}

// TitleFromMessages synthesizes a session title: the first user message's
// text truncated, or a timestamp-derived label if no user message exists.
func TitleFromMessages(messages []Message) string {
	for _, m := range messages {
		if m.Sender != SenderUser {
			continue
		}
		title := strings.TrimSpace(m.Text)
		if title == "" {
			continue
		}
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		return title
	}
	if len(messages) > 0 {
		return defaultTitle(messages[0].Timestamp)
	}
	return defaultTitle(time.Now())
}

// LanguageOption is one entry in the supported translation targets.
type LanguageOption struct {
	Code  string
	Label string
}

// NativeLanguage is the language the model replies in without translation.
const NativeLanguage = "en"

// Languages lists the supported translation targets.
var Languages = []LanguageOption{
	{Code: "en", Label: "English"},
	{Code: "es", Label: "Spanish"},
	{Code: "fr", Label: "French"},
	{Code: "de", Label: "German"},
	{Code: "ja", Label: "Japanese"},
	{Code: "zh-CN", Label: "Chinese (Simplified)"},
	{Code: "hi", Label: "Hindi"},
	{Code: "ar", Label: "Arabic"},
	{Code: "pt", Label: "Portuguese"},
	{Code: "ru", Label: "Russian"},
}

// LanguageLabel returns the human label for a language code, or the code
// itself if it is not in the supported list.
func LanguageLabel(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.Label
		}
	}
	return code
}

// IsSupportedLanguage reports whether code is a known translation target.
func IsSupportedLanguage(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}
