package profile

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const sectionCutset = " :\n*"

var (
	jsonArrayRe    = regexp.MustCompile(`(?s)\[.*\]`)
	summarySplitRe = regexp.MustCompile(`(?i)\*\*HR Summary:\*\*|\*\*Justification:\*\*|HR Summary:|Justification:`)
)

// ParseSections splits a generated response into raw section contents
// keyed by the contract keys. Markers are located case-insensitively;
// each section runs from the end of its marker to the start of the next
// found marker. Markers absent from the text yield empty strings, never
// an error.
func (c SectionContract) ParseSections(text string) map[string]string {
	sections := make(map[string]string, len(c))
	for _, s := range c {
		sections[s.Key] = ""
	}

	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	type found struct {
		pos    int
		key    string
		marker string
	}
	var positions []found
	for _, s := range c {
		if idx := strings.Index(lower, s.Marker); idx != -1 {
			positions = append(positions, found{pos: idx, key: s.Key, marker: s.Marker})
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].pos < positions[j].pos })

	for i, f := range positions {
		start := f.pos + len(f.marker)
		end := len(text)
		if i+1 < len(positions) {
			end = positions[i+1].pos
		}
		sections[f.key] = strings.Trim(text[start:end], sectionCutset)
	}

	// Model output often wraps the ATS JSON in prose; keep only the
	// bracketed array when one is present.
	if ats := sections[KeyATSJSON]; ats != "" {
		if m := jsonArrayRe.FindString(ats); m != "" {
			sections[KeyATSJSON] = m
		}
	}

	return sections
}

// SplitSummaryJustification divides the combined HR section into its two
// parts on the sub-markers, with or without bold markup. With a single
// sub-marker the text goes to whichever part the surrounding prose names;
// with none the whole block is treated as summary.
func SplitSummaryJustification(text string) (summary, justification string) {
	parts := summarySplitRe.Split(text, -1)
	switch len(parts) {
	case 3:
		summary, justification = parts[1], parts[2]
	case 2:
		if strings.Contains(strings.ToLower(text), "summary") {
			summary = parts[1]
		} else {
			justification = parts[1]
		}
	default:
		summary = text
	}
	return strings.TrimSpace(summary), strings.TrimSpace(justification)
}

var recommendationHeaders = []string{
	"Why Select This Candidate",
	"Why Not Select This Candidate",
	"Additional Future Potential",
}

// StyleRecommendation re-emphasizes the three fixed recommendation
// sub-headers with bold markup wherever they appear unmarked, so
// downstream rendering is consistent.
func StyleRecommendation(recommendation string) string {
	out := recommendation
	for _, header := range recommendationHeaders {
		out = emphasizeHeader(out, header)
	}
	return out
}

// emphasizeHeader rewrites "Header:" as "\n\n**Header:**" unless the
// occurrence is already bolded on either side.
func emphasizeHeader(text, header string) string {
	re := regexp.MustCompile(`(?i)\s*` + regexp.QuoteMeta(header) + `\s*:`)

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		// Skip spans adjacent to existing bold markup. The leading
		// whitespace the pattern swallows doesn't count; only a star
		// touching the header word itself marks it as already bold.
		span := text[start:end]
		headerStart := start + (len(span) - len(strings.TrimLeft(span, " \t\r\n")))
		if (headerStart > 0 && text[headerStart-1] == '*') || (end < len(text) && text[end] == '*') {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString("\n\n**" + canonicalHeader(text[start:end]) + ":**")
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// canonicalHeader strips surrounding whitespace and the trailing colon
// from a matched header span.
func canonicalHeader(span string) string {
	span = strings.TrimSpace(span)
	return strings.TrimSpace(strings.TrimSuffix(span, ":"))
}

// atsEntry is the shape of one object in the ATS evaluation array; the
// model emits scores as strings, but numbers are tolerated.
type atsEntry struct {
	Name     string `json:"name"`
	ATSScore any    `json:"ats_score"`
	HRScore  any    `json:"hr_score"`
}

// ExtractScores parses the ATS JSON array and returns the two scores as
// strings. Either score may be nil when missing or null; a malformed
// document returns an error the caller logs and tolerates.
func ExtractScores(atsJSON string) (atsScore, hrScore *string, err error) {
	if strings.TrimSpace(atsJSON) == "" {
		return nil, nil, nil
	}

	var entries []atsEntry
	if err := json.Unmarshal([]byte(atsJSON), &entries); err != nil {
		return nil, nil, fmt.Errorf("parse ats json: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil, nil
	}

	return scoreString(entries[0].ATSScore), scoreString(entries[0].HRScore), nil
}

func scoreString(v any) *string {
	switch s := v.(type) {
	case string:
		return &s
	case float64:
		formatted := strings.TrimSuffix(fmt.Sprintf("%g", s), ".0")
		return &formatted
	default:
		return nil
	}
}

// AssembleSections turns raw parsed sections into the typed Sections
// value: the HR block is split, the recommendation restyled, and the ATS
// scores extracted. A score parse failure leaves both scores nil.
func AssembleSections(raw map[string]string) (Sections, error) {
	summary, justification := SplitSummaryJustification(raw[KeySummaryJustification])

	sections := Sections{
		BasicInfo:           raw[KeyBasicInfo],
		StrengthsWeaknesses: raw[KeyStrengthsWeaknesses],
		HRSummary:           summary,
		Justification:       justification,
		Recommendation:      StyleRecommendation(raw[KeyRecommendation]),
		ATSJSON:             raw[KeyATSJSON],
		InterviewQuestions:  raw[KeyInterviewQuestions],
	}

	ats, hr, err := ExtractScores(sections.ATSJSON)
	if err != nil {
		return sections, err
	}
	sections.ATSScore = ats
	sections.HRScore = hr
	return sections, nil
}
