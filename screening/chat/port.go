package chat

import "context"

// ConversationStore persists per-session chat history.
type ConversationStore interface {
	Load(ctx context.Context, sessionID string) ([]Message, error)
	Save(ctx context.Context, sessionID string, history []Message) error
}
