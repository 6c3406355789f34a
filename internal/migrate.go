package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SlotFormat identifies the schema of a raw persisted slot value.
type SlotFormat int

const (
	// FormatEmpty is an absent or empty-array slot.
	FormatEmpty SlotFormat = iota
	// FormatCurrent is an array of ChatSession objects.
	FormatCurrent
	// FormatLegacyNested is an array of message arrays with no session
	// metadata, written by older releases.
	FormatLegacyNested
	// FormatLegacyFlat is a bare array of messages, the oldest layout
	// (one implicit session).
	FormatLegacyFlat
	// FormatUnknown is anything else; treated as corrupt.
	FormatUnknown
)

// DetectSlotFormat sniffs the schema of a raw slot value. Detection is a
// closed set: every known legacy layout maps to exactly one branch, and
// anything unrecognized is FormatUnknown rather than a guess.
func DetectSlotFormat(raw []byte) SlotFormat {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return FormatUnknown
	}
	if len(elems) == 0 {
		return FormatEmpty
	}

	first := bytes.TrimSpace(elems[0])
	if len(first) == 0 {
		return FormatUnknown
	}
	if first[0] == '[' {
		return FormatLegacyNested
	}
	if first[0] != '{' {
		return FormatUnknown
	}

	// Both sessions and messages are objects with an "id"; only sessions
	// carry a "messages" field, only messages carry a "sender".
	var probe struct {
		Messages *json.RawMessage `json:"messages"`
		Sender   string           `json:"sender"`
	}
	if err := json.Unmarshal(first, &probe); err != nil {
		return FormatUnknown
	}
	if probe.Messages != nil {
		return FormatCurrent
	}
	if probe.Sender != "" {
		return FormatLegacyFlat
	}
	return FormatUnknown
}

// ParseCurrentSessions decodes a current-format slot value. Message
// timestamps revive from their RFC3339 serialized form during decoding.
func ParseCurrentSessions(raw []byte) ([]*ChatSession, error) {
	var sessions []*ChatSession
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, fmt.Errorf("failed to parse sessions: %w", err)
	}
	return sessions, nil
}

// ParseLegacyNested decodes an array-of-message-arrays slot value and
// converts each element into a ChatSession.
func ParseLegacyNested(raw []byte) ([]*ChatSession, error) {
	var lists [][]Message
	if err := json.Unmarshal(raw, &lists); err != nil {
		return nil, fmt.Errorf("failed to parse legacy session lists: %w", err)
	}
	sessions := make([]*ChatSession, 0, len(lists))
	for _, list := range lists {
		sessions = append(sessions, sessionFromLegacyMessages(list))
	}
	return sessions, nil
}

// ParseLegacyFlat decodes a bare message array and wraps it in a single
// ChatSession.
func ParseLegacyFlat(raw []byte) (*ChatSession, error) {
	var messages []Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse legacy messages: %w", err)
	}
	return sessionFromLegacyMessages(messages), nil
}

// sessionFromLegacyMessages synthesizes the session metadata the legacy
// layouts never stored: a fresh id, a title from the first user message
// (or the first message's timestamp), and lastModified from the last
// message's timestamp (or now for an empty list). Typing placeholders
// that leaked into old stores are dropped.
func sessionFromLegacyMessages(messages []Message) *ChatSession {
	kept := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.IsTyping {
			continue
		}
		kept = append(kept, m)
	}

	lastModified := time.Now()
	if len(kept) > 0 {
		lastModified = kept[len(kept)-1].Timestamp
	}

	return &ChatSession{
		ID:           uuid.NewString(),
		Title:        TitleFromMessages(kept),
		Messages:     kept,
		LastModified: lastModified,
	}
}
