package internal

import (
	"context"
	"fmt"
	"strings"
)

// ConversationController owns the single active session for a running
// instance. It mediates every message mutation and remote call, and writes
// the collection back through the SessionStore after every user-visible
// state change.
//
// Callers must serialize SendUserText invocations on a session (the CLI
// does this naturally); the controller performs no internal locking. An
// in-flight call cannot be cancelled, but its result is applied to the
// session it was issued against by id. If that session has been replaced
// by the time the call resolves, the result is dropped.
type ConversationController struct {
	store     *SessionStore
	assistant Assistant
	notifier  Notifier

	sessions []*ChatSession
	active   *ChatSession
}

// NewConversationController wires the controller to its collaborators.
func NewConversationController(store *SessionStore, assistant Assistant, notifier Notifier) *ConversationController {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ConversationController{
		store:     store,
		assistant: assistant,
		notifier:  notifier,
	}
}

// ActiveSession returns the session currently being conversed in.
func (c *ConversationController) ActiveSession() *ChatSession {
	return c.active
}

// Sessions returns the in-memory collection in storage order.
func (c *ConversationController) Sessions() []*ChatSession {
	return c.sessions
}

// Activate loads the store and selects the active session. A known
// sessionID wins; otherwise the most recently modified session is chosen;
// an empty store gets a fresh session seeded with the welcome message,
// persisted before use.
func (c *ConversationController) Activate(sessionID string) (*ChatSession, error) {
	sessions, err := c.store.LoadAll()
	if err != nil {
		return nil, err
	}
	c.sessions = sessions

	if sessionID != "" {
		if session := c.sessionByID(sessionID); session != nil {
			c.active = session
			return session, nil
		}
		LogWarn("Session %s not found, falling back to most recent", sessionID)
	}

	if len(c.sessions) > 0 {
		latest := c.sessions[0]
		for _, session := range c.sessions[1:] {
			if session.LastModified.After(latest.LastModified) {
				latest = session
			}
		}
		c.active = latest
		return latest, nil
	}

	fresh := NewChatSession()
	c.sessions = append(c.sessions, fresh)
	c.active = fresh
	if err := c.persist(); err != nil {
		return nil, err
	}
	return fresh, nil
}

// StartNewSession creates and activates a fresh session. If the current
// active session is still just the untouched welcome message, it is
// replaced in place instead of duplicated.
func (c *ConversationController) StartNewSession() (*ChatSession, error) {
	fresh := NewChatSession()

	replaced := false
	if c.active != nil && c.active.IsUntouchedWelcome() {
		for i, session := range c.sessions {
			if session.ID == c.active.ID {
				c.sessions[i] = fresh
				replaced = true
				break
			}
		}
	}
	if !replaced {
		c.sessions = append(c.sessions, fresh)
	}

	c.active = fresh
	if err := c.persist(); err != nil {
		return nil, err
	}
	return fresh, nil
}

// SendUserText runs one full turn against the active session: append the
// user message, show the typing placeholder, call the assistant (image or
// chat path), replace the placeholder with the resulting bot message, and
// persist. Remote failures never escape; they become bot messages and
// notifications. Blank input with no image mode is a silent no-op.
func (c *ConversationController) SendUserText(ctx context.Context, text string, imageMode bool, targetLanguage string) error {
	if strings.TrimSpace(text) == "" && !imageMode {
		return nil
	}
	if c.active == nil {
		return fmt.Errorf("no active session; call Activate first")
	}

	session := c.active
	targetID := session.ID

	history := modelHistory(session)

	userMsg := NewMessage(SenderUser, text)
	appendMessage(session, userMsg)
	session.Messages = append(session.Messages, NewTypingMessage())

	if imageMode {
		c.runImageTurn(ctx, targetID, text)
	} else {
		c.runChatTurn(ctx, targetID, history, userMsg, targetLanguage)
	}

	if target := c.sessionByID(targetID); target != nil {
		target.Touch()
	}
	return c.persist()
}

// RenameSession updates a session's title. Blank titles are rejected.
func (c *ConversationController) RenameSession(sessionID, newTitle string) error {
	title := strings.TrimSpace(newTitle)
	if title == "" {
		return fmt.Errorf("title cannot be blank")
	}
	session := c.sessionByID(sessionID)
	if session == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	session.Title = title
	session.Touch()
	return c.persist()
}

// ClearAll empties the store and returns to a freshly created session.
func (c *ConversationController) ClearAll() (*ChatSession, error) {
	fresh := NewChatSession()
	c.sessions = []*ChatSession{fresh}
	c.active = fresh
	if err := c.persist(); err != nil {
		return nil, err
	}
	return fresh, nil
}

// runChatTurn executes the chat-mode branch of a turn.
func (c *ConversationController) runChatTurn(ctx context.Context, targetID string, history []ChatTurn, userMsg Message, targetLanguage string) {
	turns, err := buildModelTurns(history, userMsg)
	if err != nil {
		LogError("History assembly failed: %v", err)
		c.finishTurn(targetID, NewMessage(SenderBot, structureFailedText))
		c.notifier.NotifyError("Conversation Error", "Could not assemble the conversation history.")
		return
	}

	reply, err := c.assistant.GenerateReply(ctx, turns)
	if err != nil {
		LogError("Reply generation failed: %v", err)
		c.finishTurn(targetID, NewMessage(SenderBot, replyFailedText))
		c.notifier.NotifyError("Error", "Failed to get response from AI.")
		return
	}

	botMsg := NewMessage(SenderBot, reply)
	if targetLanguage != "" && targetLanguage != NativeLanguage && reply != "" {
		translated, terr := c.assistant.Translate(ctx, reply, targetLanguage)
		if terr != nil || translated == "" {
			// Fall back to the untranslated reply; the turn still
			// succeeds.
			LogWarn("Translation to %s failed: %v", targetLanguage, terr)
			c.notifier.NotifyError("Translation Failed", "Could not translate the response.")
		} else {
			botMsg.OriginalText = reply
			botMsg.TranslatedText = translated
			botMsg.Text = translated
		}
	}

	c.finishTurn(targetID, botMsg)
}

// runImageTurn executes the image-mode branch: description to prompt, then
// prompt to image.
func (c *ConversationController) runImageTurn(ctx context.Context, targetID, description string) {
	prompt, err := c.assistant.GenerateImagePrompt(ctx, description)
	if err != nil || strings.TrimSpace(prompt) == "" {
		if err != nil {
			LogError("Image prompt generation failed: %v", err)
		}
		c.finishTurn(targetID, NewMessage(SenderBot, imagePromptFailedText))
		c.notifier.NotifyError("Image Prompt Generation Failed", "Could not generate an image prompt.")
		return
	}

	result := c.assistant.GenerateImage(ctx, prompt)
	if result.Err != "" {
		LogError("Image generation failed: %s", result.Err)
		c.finishTurn(targetID, NewMessage(SenderBot, SanitizeImageError(result.Err)))
		c.notifier.NotifyError("Image Generation Failed", result.Err)
		return
	}
	if result.DataURI == "" {
		c.finishTurn(targetID, NewMessage(SenderBot, imageUnexpectedText))
		c.notifier.NotifyError("Image Generation Error", "Unexpected issue during image processing.")
		return
	}

	msg := NewMessage(SenderBot, fmt.Sprintf("Here's the image I generated based on the prompt: %q", prompt))
	msg.ImagePrompt = prompt
	msg.ImageURL = result.DataURI
	c.finishTurn(targetID, msg)
}

// finishTurn removes the typing placeholder from the turn's target session
// and appends the resulting bot message. A result whose session has been
// replaced since the call started is dropped.
func (c *ConversationController) finishTurn(targetID string, msg Message) {
	target := c.sessionByID(targetID)
	if target == nil {
		LogWarn("Dropping stale result for replaced session %s", targetID)
		return
	}
	appendMessage(target, msg)
}

func (c *ConversationController) sessionByID(id string) *ChatSession {
	for _, session := range c.sessions {
		if session.ID == id {
			return session
		}
	}
	return nil
}

func (c *ConversationController) persist() error {
	return c.store.SaveAll(c.sessions)
}

// appendMessage removes any typing placeholder and appends msg, keeping
// the at-most-one-placeholder invariant.
func appendMessage(session *ChatSession, msg Message) {
	session.Messages = append(session.WithoutTyping(), msg)
}

// modelHistory derives the model-call history from a session: typing
// placeholders are excluded, and a session holding only the synthetic
// welcome bot message yields empty history, since the welcome message is
// never sent as conversation context.
func modelHistory(session *ChatSession) []ChatTurn {
	messages := session.WithoutTyping()
	if len(messages) == 1 && messages[0].Sender == SenderBot {
		return nil
	}
	turns := make([]ChatTurn, 0, len(messages))
	for _, m := range messages {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		turns = append(turns, ChatTurn{Sender: m.Sender, Text: m.Text})
	}
	return turns
}

// buildModelTurns appends the new user turn to the history and enforces
// that the sequence sent to the model starts with a user turn: leading bot
// turns are dropped, and an emptied sequence resets to just the current
// user turn.
func buildModelTurns(history []ChatTurn, userMsg Message) ([]ChatTurn, error) {
	turns := append(append([]ChatTurn{}, history...), ChatTurn{Sender: SenderUser, Text: userMsg.Text})

	for len(turns) > 0 && turns[0].Sender != SenderUser {
		turns = turns[1:]
	}
	if len(turns) == 0 {
		turns = []ChatTurn{{Sender: SenderUser, Text: userMsg.Text}}
	}
	if turns[0].Sender != SenderUser {
		return nil, &StructureError{Reason: "history does not start with a user turn"}
	}
	return turns, nil
}
