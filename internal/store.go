package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Slot keys in the key-value store. The current layout lives entirely in
// sessionsSlot; legacyMessagesSlot is the oldest layout's key and is
// removed once its content has been migrated.
const (
	sessionsSlot       = "codeVedaAllChats"
	legacyMessagesSlot = "chatMessages"
)

// SessionStore owns the durable representation of the session collection:
// a single named slot holding the serialized sessions, plus one-way
// migration of the legacy layouts.
type SessionStore struct {
	db       *sql.DB
	notifier Notifier
}

// NewSessionStore creates a store over an open key-value database.
func NewSessionStore(db *sql.DB, notifier Notifier) *SessionStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &SessionStore{db: db, notifier: notifier}
}

// LoadAll reads the full session collection, migrating legacy layouts to
// the current schema on first contact. Corrupt stored data is treated as
// empty: it is logged and surfaced as a non-fatal notification, never as
// an error. The returned error covers only database-level failures.
func (s *SessionStore) LoadAll() ([]*ChatSession, error) {
	var sessions []*ChatSession
	migrated := false

	// The oldest layout kept a bare message array under its own key.
	// Its single implicit session predates anything in the main slot,
	// so it goes first.
	if flat := s.loadLegacyFlat(); flat != nil {
		sessions = append(sessions, flat)
		migrated = true
	}

	raw, ok, err := GetSlot(s.db, sessionsSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to read session slot: %w", err)
	}
	if ok {
		switch DetectSlotFormat([]byte(raw)) {
		case FormatCurrent:
			parsed, err := ParseCurrentSessions([]byte(raw))
			if err != nil {
				s.reportCorrupt(err)
			} else {
				sessions = append(sessions, parsed...)
			}
		case FormatLegacyNested:
			parsed, err := ParseLegacyNested([]byte(raw))
			if err != nil {
				s.reportCorrupt(err)
			} else {
				sessions = append(sessions, parsed...)
				migrated = true
			}
		case FormatLegacyFlat:
			// A bare message array in the main slot: same shape as the
			// old dedicated key, just misfiled.
			parsed, err := ParseLegacyFlat([]byte(raw))
			if err != nil {
				s.reportCorrupt(err)
			} else {
				sessions = append(sessions, parsed)
				migrated = true
			}
		case FormatEmpty:
			// Nothing stored yet.
		default:
			s.reportCorrupt(fmt.Errorf("unrecognized slot layout"))
		}
	}

	// Re-persist immediately in the current shape so migration runs
	// exactly once; subsequent loads read the migrated data as-is.
	if migrated {
		if err := s.SaveAll(sessions); err != nil {
			return nil, fmt.Errorf("failed to persist migrated sessions: %w", err)
		}
		if err := DeleteSlot(s.db, legacyMessagesSlot); err != nil {
			LogWarn("Failed to remove legacy message slot: %v", err)
		}
		LogInfo("Migrated %d session(s) to current storage format", len(sessions))
	}

	return sessions, nil
}

// SaveAll serializes and persists the full collection, overwriting prior
// content. Insertion order is preserved as given; typing placeholders are
// filtered out before the write.
func (s *SessionStore) SaveAll(sessions []*ChatSession) error {
	persisted := make([]*ChatSession, 0, len(sessions))
	for _, session := range sessions {
		copied := *session
		copied.Messages = session.WithoutTyping()
		persisted = append(persisted, &copied)
	}

	data, err := json.Marshal(persisted)
	if err != nil {
		return fmt.Errorf("failed to serialize sessions: %w", err)
	}
	return SetSlot(s.db, sessionsSlot, string(data))
}

// loadLegacyFlat reads and parses the oldest layout's slot, returning nil
// when it is absent or unusable.
func (s *SessionStore) loadLegacyFlat() *ChatSession {
	raw, ok, err := GetSlot(s.db, legacyMessagesSlot)
	if err != nil {
		LogWarn("Failed to read legacy message slot: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	session, err := ParseLegacyFlat([]byte(raw))
	if err != nil {
		s.reportCorrupt(err)
		return nil
	}
	if len(session.Messages) == 0 {
		return nil
	}
	return session
}

func (s *SessionStore) reportCorrupt(err error) {
	LogError("Corrupt session storage: %v", err)
	s.notifier.Notify("Error loading history", "Could not parse saved chat messages.")
}
