package intakeapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	sid, signed, err := svc.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, sid)
	assert.NotEmpty(t, signed)

	parsed, err := svc.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, sid, parsed)
}

func TestSessionIssueIsUnique(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	a, _, err := svc.Issue()
	require.NoError(t, err)
	b, _, err := svc.Issue()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSessionParseRejectsWrongSecret(t *testing.T) {
	issuer := NewSessionService("secret-a", time.Hour)
	verifier := NewSessionService("secret-b", time.Hour)

	_, signed, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Parse(signed)
	assert.Error(t, err)
}

func TestSessionParseRejectsGarbage(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	_, err := svc.Parse("not-a-token")
	assert.Error(t, err)
}

func TestSessionDefaultTTL(t *testing.T) {
	svc := NewSessionService("test-secret", 0)
	assert.Equal(t, 24*time.Hour, svc.TTL())
}
