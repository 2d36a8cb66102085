package profile

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PromptInput carries everything the profile prompt needs about one
// candidate.
type PromptInput struct {
	JobDescription  string
	ResumeText      string
	MatchedKeywords map[string][]string
	Name            string
	Email           string
	Phone           string
}

// BuildProfilePrompt composes the structured-generation request for one
// candidate. Section headings come from the contract; the parser depends
// on them appearing verbatim in the model output.
func (c SectionContract) BuildProfilePrompt(in PromptInput) string {
	keywordsJSON, err := json.MarshalIndent(in.MatchedKeywords, "", "  ")
	if err != nil {
		keywordsJSON = []byte("{}")
	}

	heading := func(key string) string {
		for _, s := range c {
			if s.Key == key {
				return s.Heading
			}
		}
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are a senior HR analyst and technical recruiter. Your job is to analyze the resume evidence deeply and compare it with the job description, providing uniquely detailed, non-repetitive, and actionable HR insights. Use different evidence for each section and avoid repeating sentences or phrasing.
Inputs:
Job Description: %s
Resume Text: %s
Matched Keywords: %s
Candidate Name: %s
Candidate Email: %s
Candidate Phone: %s

Output Format (use explicit section headers):
`, in.JobDescription, in.ResumeText, keywordsJSON, in.Name, in.Email, in.Phone)

	fmt.Fprintf(&b, `%s
- Name: %s
- Email: %s
- Phone: %s
- Total years of experience (estimate if not explicit)
- Highest education (if available)
- Most recent position and employer

`, heading(KeyBasicInfo), in.Name, in.Email, in.Phone)

	fmt.Fprintf(&b, `%s
List 2-3 unique strengths and 2-3 unique weaknesses, each with distinct evidence from the resume (skills, projects, impact, achievements, missing skills, gaps, etc). Use this format:
- **Strength:** [evidence...]
- **Weakness:** [evidence...]

`, heading(KeyStrengthsWeaknesses))

	fmt.Fprintf(&b, `%s
Write a comprehensive, non-repetitive analysis (at least 3-5 lines, with specific, concrete resume evidence in each sentence), combining HR summary and justification. Start with a sub-heading **HR Summary:** and then a sub-heading **Justification:**, and then write the corresponding content for each. The HR Summary must be at least 4-6 lines, and should mention: domain expertise, technical proficiency, business acumen, teamwork, communication, project/role highlights, and unique strengths. Do not repeat phrases or evidence. The Justification must be at least 4-5 lines and reference project/role/skill evidence from the resume. Each major point must reference different evidence from the resume. Highlight both positive and negative aspects, and address business value, culture fit, and any observable upskilling or future potential.

`, heading(KeySummaryJustification))

	fmt.Fprintf(&b, `%s
Provide a decisive recommendation in three clearly marked sections (each at least 2-3 sentences, all using different language/evidence than above):
- **Why Select This Candidate:** Reference at least two unique strengths from the resume.
- **Why Not Select This Candidate:** Reference at least two unique weaknesses or potential concerns from the resume.
- **Additional Future Potential:** Do a rigorous analysis across 6 dimensions: Growth Consistency, Career Trajectory, Expertise Depth, Problem-Solving/Innovation, Risk Indicators, Leadership/Influence, and Adaptability/Resilience. Make it small, clear, and detailed.

`, heading(KeyRecommendation))

	fmt.Fprintf(&b, `%s
A valid JSON array with 1 object in this format:
[{
    "name": "%s",
    "ats_score": "[0-100]",
    "hr_score": "[1-10]"
}]

`, heading(KeyATSJSON), in.Name)

	fmt.Fprintf(&b, `%s
Generate 4-5 highly relevant, domain-specific interview questions based on the JD. For each, rate the resume's match: [Match level: Clear / Partial / Not Evident] — [Explanation, referencing a different project, skill, or achievement from the resume for each question.]

Your output must have these sections clearly separated, each detailed and actionable, with minimal repetition.
`, heading(KeyInterviewQuestions))

	return b.String()
}
