package chatsrv

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/introlligent/screener/internal/ai/completion"
	"github.com/introlligent/screener/screening/chat"
)

type memoryStore struct {
	histories map[string][]chat.Message
}

func newMemoryStore() *memoryStore {
	return &memoryStore{histories: make(map[string][]chat.Message)}
}

func (s *memoryStore) Load(_ context.Context, sessionID string) ([]chat.Message, error) {
	return s.histories[sessionID], nil
}

func (s *memoryStore) Save(_ context.Context, sessionID string, history []chat.Message) error {
	s.histories[sessionID] = chat.Bound(history)
	return nil
}

type fakeCompleter struct {
	reply    string
	err      error
	received []completion.Message
}

func (f *fakeCompleter) Chat(_ context.Context, messages []completion.Message) (string, error) {
	f.received = messages
	return f.reply, f.err
}

func TestRespondEmptyMessage(t *testing.T) {
	svc := New(&fakeCompleter{}, newMemoryStore())

	_, err := svc.Respond(context.Background(), "s1", "   ")
	require.Error(t, err)
}

func TestRespondCannedKeyword(t *testing.T) {
	completer := &fakeCompleter{reply: "should not be used"}
	store := newMemoryStore()
	svc := New(completer, store)

	reply, err := svc.Respond(context.Background(), "s1", "  Help  ")
	require.NoError(t, err)
	assert.Contains(t, reply, "Resume Fetch & Evaluation Guide")
	assert.Nil(t, completer.received)

	history := store.histories["s1"]
	require.Len(t, history, 2)
	assert.Equal(t, chat.RoleUser, history[0].Role)
	assert.Equal(t, "  Help  ", history[0].Content)
	assert.Equal(t, chat.RoleAssistant, history[1].Role)
}

func TestRespondDelegatesToModel(t *testing.T) {
	completer := &fakeCompleter{reply: "Here is an answer."}
	store := newMemoryStore()
	svc := New(completer, store)

	reply, err := svc.Respond(context.Background(), "s1", "How do I write a JD?")
	require.NoError(t, err)
	assert.Equal(t, "Here is an answer.", reply)

	require.NotEmpty(t, completer.received)
	assert.Equal(t, completion.RoleSystem, completer.received[0].Role)
	last := completer.received[len(completer.received)-1]
	assert.Equal(t, completion.RoleUser, last.Role)
	assert.Equal(t, "How do I write a JD?", last.Content)
}

func TestRespondHistoryWindow(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store := newMemoryStore()
	svc := New(completer, store)

	// Fill past the retention limit.
	for i := 0; i < 15; i++ {
		_, err := svc.Respond(context.Background(), "s1", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	assert.Len(t, store.histories["s1"], chat.HistoryLimit)

	_, err := svc.Respond(context.Background(), "s1", "one more")
	require.NoError(t, err)

	// system prompt + bounded window + new user message
	assert.Len(t, completer.received, 1+chat.HistoryWindow+1)
}
