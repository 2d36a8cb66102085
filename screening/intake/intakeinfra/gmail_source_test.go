package intakeinfra

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	raw := []byte("%PDF-1.7 fake body")

	unpadded := base64.RawURLEncoding.EncodeToString(raw)
	got, err := decodeBody(unpadded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	padded := base64.URLEncoding.EncodeToString(raw)
	got, err = decodeBody(padded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDecodeBodyRejectsGarbage(t *testing.T) {
	_, err := decodeBody("not base64!!")
	assert.Error(t, err)
}
