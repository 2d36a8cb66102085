package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/introlligent/screener/pkg/errx"
)

func TestAcceptanceEmail(t *testing.T) {
	email := AcceptanceEmail("jane@example.com", "Jane Doe", "Data Engineer")

	assert.Equal(t, "jane@example.com", email.To)
	assert.Equal(t, "Congratulations Jane Doe - Application Accepted!", email.Subject)
	assert.Contains(t, email.Body, "Dear Jane Doe,")
	assert.Contains(t, email.Body, "position of Data Engineer has been shortlisted")
}

func TestRejectionEmail(t *testing.T) {
	email := RejectionEmail("bob@example.com", "Bob", "ML Engineer")

	assert.Equal(t, "Application Update - ML Engineer", email.Subject)
	assert.Contains(t, email.Body, "regret to inform you")
	assert.Contains(t, email.Body, "position of ML Engineer")
}

func TestDecisionEmail(t *testing.T) {
	accept, err := DecisionEmail(KindAccept, "a@b.c", "A", "T")
	require.NoError(t, err)
	assert.Contains(t, accept.Subject, "Congratulations")

	reject, err := DecisionEmail(KindReject, "a@b.c", "A", "T")
	require.NoError(t, err)
	assert.Contains(t, reject.Subject, "Application Update")

	_, err = DecisionEmail(Kind("maybe"), "a@b.c", "A", "T")
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, CodeInvalidKind))
}
