package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a\n\nb\t c  "))
	assert.Equal(t, "", CleanText("   \n\t "))
}

func TestNameFromFilename(t *testing.T) {
	assert.Equal(t, "John Doe", NameFromFilename("123_John_Doe_2.pdf"))
	assert.Equal(t, "Jane Smith", NameFromFilename("jane-smith.pdf"))
	assert.Equal(t, "Priya Resume", NameFromFilename("priya resume.pdf"))
	// only a trailing 1-3 digit counter is stripped
	assert.Equal(t, "12", NameFromFilename("12345.pdf"))
}

func TestCandidateNameFallbackChain(t *testing.T) {
	rules := DefaultRules()

	// filename wins when it yields a usable name
	assert.Equal(t, "John Doe", rules.CandidateName("4821_John_Doe.pdf", "some resume text"))

	// generic filename falls through to the first text line
	name := rules.CandidateName("unknown.pdf", "Maria Lopez Senior Analyst with ten years")
	assert.Equal(t, "Maria Lopez Senior Analyst with ten years", name)

	// overly long first line falls back to the filename stem
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	assert.Equal(t, "unknown", rules.CandidateName("unknown.pdf", string(long)))
}

func TestContactInfo(t *testing.T) {
	email, phone := ContactInfo("Reach me at jane.doe@example.com or 555-123-4567.")
	assert.Equal(t, "jane.doe@example.com", email)
	assert.Equal(t, "555-123-4567", phone)

	email, phone = ContactInfo("no contact details here")
	assert.Equal(t, NotFound, email)
	assert.Equal(t, NotFound, phone)
}

func TestContactInfoPhonePriority(t *testing.T) {
	// The dashed pattern is tried before the parenthesized one.
	_, phone := ContactInfo("(555) 999-8888 and 555-123-4567")
	assert.Equal(t, "555-123-4567", phone)

	_, phone = ContactInfo("call (555) 999-8888")
	assert.Equal(t, "(555) 999-8888", phone)

	_, phone = ContactInfo("raw 5551234567 digits")
	assert.Equal(t, "5551234567", phone)
}

func TestSenderAddress(t *testing.T) {
	assert.Equal(t, "jane@example.com", SenderAddress("Jane Doe <jane@example.com>"))
	assert.Equal(t, "bob@example.com", SenderAddress("reply to bob@example.com please"))
	assert.Equal(t, "just a name", SenderAddress("  just a name  "))
	assert.Equal(t, "", SenderAddress(""))
}

func TestMatchKeywords(t *testing.T) {
	rules := DefaultRules()
	matches := rules.MatchKeywords("Experienced in SQL, Power BI and machine learning pipelines on AWS.")

	assert.Contains(t, matches["data_analytics"], "SQL")
	assert.Contains(t, matches["business_intelligence"], "Power BI")
	assert.Contains(t, matches["machine_learning"], "Machine Learning")
	assert.Contains(t, matches["cloud"], "AWS")
	assert.NotContains(t, matches, "data_quality")
}

func TestInferJobTitle(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, "Data Engineer", rules.InferJobTitle("We are hiring for the position of Data Engineer\nwith 5 years experience"))
	assert.Equal(t, "Senior ML Engineer", rules.InferJobTitle("We are looking for a Senior ML Engineer"))
	assert.Equal(t, "Backend Developer", rules.InferJobTitle("Backend Developer\nResponsibilities: ..."))
	assert.Equal(t, rules.FallbackJobTitle, rules.InferJobTitle(""))
}
