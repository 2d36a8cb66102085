package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `Basic Information:
- Name: Jane Doe
- Email: jane@example.com

Strengths & Weaknesses:
Strengths: SQL, Python.
Weaknesses: limited cloud exposure.

HR Summary & Justification:
HR Summary: Strong analyst profile.
Justification: Five years of relevant work.

Recommendation:
Why Select This Candidate: solid technical base.
Why Not Select This Candidate: junior on cloud.

ATS Evaluation JSON:
Here is the evaluation:
[{"name": "Jane Doe", "ats_score": "85", "hr_score": "80"}]

JD-Based Interview Questions & Resume Match Evaluation:
1. Describe a complex SQL query you wrote.
`

func TestParseSections(t *testing.T) {
	contract := DefaultContract()
	sections := contract.ParseSections(sampleResponse)

	assert.Contains(t, sections[KeyBasicInfo], "Name: Jane Doe")
	assert.Contains(t, sections[KeyStrengthsWeaknesses], "Strengths: SQL, Python.")
	assert.Contains(t, sections[KeySummaryJustification], "Strong analyst profile")
	assert.Contains(t, sections[KeyRecommendation], "Why Select This Candidate")
	assert.Contains(t, sections[KeyInterviewQuestions], "complex SQL query")

	// prose around the JSON array is stripped
	assert.Equal(t, `[{"name": "Jane Doe", "ats_score": "85", "hr_score": "80"}]`, sections[KeyATSJSON])
}

func TestParseSectionsMissingMarkers(t *testing.T) {
	contract := DefaultContract()
	sections := contract.ParseSections("free text with no headings at all")

	for _, s := range contract {
		assert.Empty(t, sections[s.Key], "section %s", s.Key)
	}
}

func TestSplitSummaryJustification(t *testing.T) {
	summary, justification := SplitSummaryJustification(
		"**HR Summary:** Good fit overall. **Justification:** Matches the core stack.")
	assert.Equal(t, "Good fit overall.", summary)
	assert.Equal(t, "Matches the core stack.", justification)

	// single marker naming the summary
	summary, justification = SplitSummaryJustification("HR Summary: only a summary here")
	assert.Equal(t, "only a summary here", summary)
	assert.Empty(t, justification)

	// no markers at all: everything is summary
	summary, justification = SplitSummaryJustification("plain text block")
	assert.Equal(t, "plain text block", summary)
	assert.Empty(t, justification)
}

func TestStyleRecommendation(t *testing.T) {
	styled := StyleRecommendation("Why Select This Candidate: great skills. Why Not Select This Candidate: none.")
	assert.Contains(t, styled, "**Why Select This Candidate:**")
	assert.Contains(t, styled, "**Why Not Select This Candidate:**")

	// already-bold headers are left untouched
	already := "**Why Select This Candidate:** fine as is."
	assert.Equal(t, already, StyleRecommendation(already))

	// a bullet star before the header is not bold markup
	bullet := StyleRecommendation("* Why Select This Candidate: strong fit.")
	assert.Contains(t, bullet, "**Why Select This Candidate:**")
}

func TestExtractScores(t *testing.T) {
	ats, hr, err := ExtractScores(`[{"name": "X", "ats_score": "85", "hr_score": "80"}]`)
	require.NoError(t, err)
	require.NotNil(t, ats)
	require.NotNil(t, hr)
	assert.Equal(t, "85", *ats)
	assert.Equal(t, "80", *hr)

	// numeric scores are tolerated
	ats, hr, err = ExtractScores(`[{"name": "X", "ats_score": 72, "hr_score": 68}]`)
	require.NoError(t, err)
	assert.Equal(t, "72", *ats)
	assert.Equal(t, "68", *hr)

	// null and missing fields yield nil without error
	ats, hr, err = ExtractScores(`[{"name": "X", "ats_score": null}]`)
	require.NoError(t, err)
	assert.Nil(t, ats)
	assert.Nil(t, hr)

	// malformed document is an error
	_, _, err = ExtractScores(`{"not": "an array"}`)
	assert.Error(t, err)

	// empty input is not an error
	ats, hr, err = ExtractScores("")
	require.NoError(t, err)
	assert.Nil(t, ats)
	assert.Nil(t, hr)
}

func TestAssembleSections(t *testing.T) {
	contract := DefaultContract()
	assembled, err := AssembleSections(contract.ParseSections(sampleResponse))
	require.NoError(t, err)

	assert.Equal(t, "Strong analyst profile.", assembled.HRSummary)
	assert.Equal(t, "Five years of relevant work.", assembled.Justification)
	assert.Contains(t, assembled.Recommendation, "**Why Select This Candidate:**")
	require.NotNil(t, assembled.ATSScore)
	assert.Equal(t, "85", *assembled.ATSScore)
	require.NotNil(t, assembled.HRScore)
	assert.Equal(t, "80", *assembled.HRScore)
}
