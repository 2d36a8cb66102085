package intake

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// Query narrows a mailbox search.
type Query struct {
	// After restricts results to messages received on or after this time.
	After time.Time
	// Term is an optional free-text search term, quoted verbatim.
	Term string
}

// MessageSource lists inbound messages with their PDF attachments.
type MessageSource interface {
	Fetch(ctx context.Context, token *oauth2.Token, q Query) ([]Message, error)
}

// TokenStore persists OAuth tokens between sessions.
type TokenStore interface {
	Save(ctx context.Context, sessionID string, token *oauth2.Token) error
	Get(ctx context.Context, sessionID string) (*oauth2.Token, error)
	Delete(ctx context.Context, sessionID string) error
}
