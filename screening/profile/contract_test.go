package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContractValid(t *testing.T) {
	require.NoError(t, DefaultContract().Validate())
}

func TestValidateRejectsBrokenContracts(t *testing.T) {
	dup := SectionContract{
		{Key: "a", Marker: "alpha", Heading: "Alpha:"},
		{Key: "a", Marker: "beta", Heading: "Beta:"},
	}
	assert.Error(t, dup.Validate())

	drift := SectionContract{
		{Key: "a", Marker: "alpha section", Heading: "Something Else:"},
	}
	assert.Error(t, drift.Validate())

	empty := SectionContract{{Key: "a", Marker: "", Heading: "A:"}}
	assert.Error(t, empty.Validate())
}

func TestPromptCarriesContractHeadings(t *testing.T) {
	contract := DefaultContract()
	prompt := contract.BuildProfilePrompt(PromptInput{
		JobDescription:  "We need a data analyst.",
		ResumeText:      "Jane Doe, SQL analyst.",
		MatchedKeywords: map[string][]string{"data_analytics": {"SQL"}},
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "555-123-4567",
	})

	for _, s := range contract {
		assert.Contains(t, prompt, s.Heading)
	}
	assert.Contains(t, prompt, "We need a data analyst.")
	assert.Contains(t, prompt, "Jane Doe, SQL analyst.")
	assert.Contains(t, prompt, "jane@example.com")
}

func TestPromptHeadingsParseBack(t *testing.T) {
	// Any text emitted under a contract heading must be recoverable by
	// the parser from that same contract.
	contract := DefaultContract()

	var b strings.Builder
	for i, s := range contract {
		b.WriteString(s.Heading + "\n")
		b.WriteString(strings.Repeat("x", i+1) + "\n\n")
	}

	sections := contract.ParseSections(b.String())
	for i, s := range contract {
		assert.Contains(t, sections[s.Key], strings.Repeat("x", i+1))
	}
}
