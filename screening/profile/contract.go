package profile

import (
	"fmt"
	"strings"
)

// Section keys shared by the prompt builder and the response parser.
const (
	KeyBasicInfo            = "basic_info"
	KeyStrengthsWeaknesses  = "strengths_weaknesses"
	KeySummaryJustification = "hr_summary_justification"
	KeyRecommendation       = "recommendation"
	KeyATSJSON              = "ats_json"
	KeyInterviewQuestions   = "interview_questions"
)

// SectionSpec binds one generated section to its literals: Heading is
// emitted verbatim in the prompt, Marker is the phrase the parser locates
// (a case-insensitive prefix of Heading).
type SectionSpec struct {
	Key     string
	Marker  string
	Heading string
}

// SectionContract is the ordered list of sections the model is asked to
// produce. Builder and parser share one contract value so the two cannot
// drift apart.
type SectionContract []SectionSpec

// DefaultContract returns the production section contract.
func DefaultContract() SectionContract {
	return SectionContract{
		{Key: KeyBasicInfo, Marker: "basic information", Heading: "Basic Information:"},
		{Key: KeyStrengthsWeaknesses, Marker: "strengths & weaknesses", Heading: "Strengths & Weaknesses:"},
		{Key: KeySummaryJustification, Marker: "hr summary & justification", Heading: "HR Summary & Justification:"},
		{Key: KeyRecommendation, Marker: "recommendation", Heading: "Recommendation:"},
		{Key: KeyATSJSON, Marker: "ats evaluation json", Heading: "ATS Evaluation JSON:"},
		{Key: KeyInterviewQuestions, Marker: "jd-based interview questions", Heading: "JD-Based Interview Questions & Resume Match Evaluation:"},
	}
}

// Validate checks the internal consistency of the contract: unique keys
// and every marker a case-insensitive prefix of its heading, so that text
// emitted under a heading is always locatable by its marker.
func (c SectionContract) Validate() error {
	seen := make(map[string]bool, len(c))
	for _, s := range c {
		if s.Key == "" {
			return fmt.Errorf("section contract: empty key")
		}
		if seen[s.Key] {
			return fmt.Errorf("section contract: duplicate key %q", s.Key)
		}
		seen[s.Key] = true
		if s.Marker == "" {
			return fmt.Errorf("section contract: section %q has no marker", s.Key)
		}
		if !strings.HasPrefix(strings.ToLower(s.Heading), s.Marker) {
			return fmt.Errorf("section contract: marker %q is not a prefix of heading %q", s.Marker, s.Heading)
		}
	}
	return nil
}
