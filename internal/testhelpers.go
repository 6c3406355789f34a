package internal

import (
	"context"
	"fmt"
	"time"
)

// FakeAssistant is a scripted Assistant for tests. Each field configures
// one capability; unset capabilities fail loudly so tests notice
// unexpected calls.
type FakeAssistant struct {
	ReplyFn       func(turns []ChatTurn) (string, error)
	ImagePromptFn func(description string) (string, error)
	ImageFn       func(prompt string) ImageResult
	TranslateFn   func(text, languageCode string) (string, error)

	// Recorded calls, in order.
	ReplyCalls       [][]ChatTurn
	ImagePromptCalls []string
	ImageCalls       []string
	TranslateCalls   []string
}

func (f *FakeAssistant) GenerateReply(ctx context.Context, turns []ChatTurn) (string, error) {
	f.ReplyCalls = append(f.ReplyCalls, turns)
	if f.ReplyFn == nil {
		return "", fmt.Errorf("unexpected GenerateReply call")
	}
	return f.ReplyFn(turns)
}

func (f *FakeAssistant) GenerateImagePrompt(ctx context.Context, description string) (string, error) {
	f.ImagePromptCalls = append(f.ImagePromptCalls, description)
	if f.ImagePromptFn == nil {
		return "", fmt.Errorf("unexpected GenerateImagePrompt call")
	}
	return f.ImagePromptFn(description)
}

func (f *FakeAssistant) GenerateImage(ctx context.Context, prompt string) ImageResult {
	f.ImageCalls = append(f.ImageCalls, prompt)
	if f.ImageFn == nil {
		return ImageResult{Err: "unexpected GenerateImage call"}
	}
	return f.ImageFn(prompt)
}

func (f *FakeAssistant) Translate(ctx context.Context, text, languageCode string) (string, error) {
	f.TranslateCalls = append(f.TranslateCalls, languageCode)
	if f.TranslateFn == nil {
		return "", fmt.Errorf("unexpected Translate call")
	}
	return f.TranslateFn(text, languageCode)
}

// Notification is one recorded notifier event.
type Notification struct {
	Title   string
	Detail  string
	IsError bool
}

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	Events []Notification
}

func (r *RecordingNotifier) Notify(title, detail string) {
	r.Events = append(r.Events, Notification{Title: title, Detail: detail})
}

func (r *RecordingNotifier) NotifyError(title, detail string) {
	r.Events = append(r.Events, Notification{Title: title, Detail: detail, IsError: true})
}

// ErrorCount returns the number of recorded error notifications.
func (r *RecordingNotifier) ErrorCount() int {
	n := 0
	for _, e := range r.Events {
		if e.IsError {
			n++
		}
	}
	return n
}

// CreateTestSession creates a session with a welcome message plus one
// user/bot exchange.
func CreateTestSession(title string) *ChatSession {
	session := NewChatSession()
	session.Title = title
	user := NewMessage(SenderUser, "Hello, how are you?")
	bot := NewMessage(SenderBot, "I'm doing well, thank you!")
	session.Messages = append(session.Messages, user, bot)
	session.LastModified = bot.Timestamp
	return session
}

// CreateTestSessionAt creates a welcome-only session with a fixed
// LastModified, useful for most-recent selection tests.
func CreateTestSessionAt(title string, lastModified time.Time) *ChatSession {
	session := NewChatSession()
	session.Title = title
	session.LastModified = lastModified
	return session
}
