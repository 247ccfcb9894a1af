package contract

import (
	"complaint-assistant-be/pkg/llm"
)

// HistoryRepository is the conversation store: ordered LLM message lists
// keyed by session id + assembly kind. Entries live for the process lifetime;
// there is no eviction. Each key is only ever written by the single request
// flow handling that agent's session.
type HistoryRepository interface {
	// Get returns the history for a key, empty when absent.
	Get(key string) []llm.Message

	// Append adds one message to the end of a key's history.
	Append(key string, msg llm.Message)

	// Replace swaps a key's history wholesale (used when loading a saved case).
	Replace(key string, msgs []llm.Message)

	// Clear drops a key's history.
	Clear(key string)
}

// History key kinds. Script generation, follow-up chat, and outbound drafts
// each keep a separate chain per session.
const (
	HistoryKindScript = "script"
	HistoryKindChat   = "chat"
	HistoryKindDraft  = "draft"
)

// HistoryKey builds the store key for one session and assembly kind.
func HistoryKey(sessionId, kind string) string {
	return sessionId + ":" + kind
}
