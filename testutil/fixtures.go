package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

// LegacyMessage builds a serialized message in the legacy on-disk shape.
func LegacyMessage(id, sender, text string, ts time.Time) map[string]interface{} {
	return map[string]interface{}{
		"id":        id,
		"sender":    sender,
		"text":      text,
		"timestamp": ts.Format(time.RFC3339),
	}
}

// LegacyNestedSlot serializes message lists into the legacy
// array-of-message-arrays slot layout.
func LegacyNestedSlot(t *testing.T, lists ...[]map[string]interface{}) string {
	t.Helper()
	if lists == nil {
		lists = [][]map[string]interface{}{}
	}
	data, err := json.Marshal(lists)
	if err != nil {
		t.Fatalf("Failed to marshal legacy nested slot: %v", err)
	}
	return string(data)
}

// LegacyFlatSlot serializes messages into the oldest bare-array slot layout.
func LegacyFlatSlot(t *testing.T, messages ...map[string]interface{}) string {
	t.Helper()
	if messages == nil {
		messages = []map[string]interface{}{}
	}
	data, err := json.Marshal(messages)
	if err != nil {
		t.Fatalf("Failed to marshal legacy flat slot: %v", err)
	}
	return string(data)
}

// LegacyConversation builds a plausible two-turn legacy message list.
func LegacyConversation(t *testing.T, n int, base time.Time) []map[string]interface{} {
	t.Helper()
	return []map[string]interface{}{
		LegacyMessage(fmt.Sprintf("legacy_%d_user", n), "user", fmt.Sprintf("Question %d", n), base),
		LegacyMessage(fmt.Sprintf("legacy_%d_bot", n), "bot", fmt.Sprintf("Answer %d", n), base.Add(time.Minute)),
	}
}
