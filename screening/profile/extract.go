package profile

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	emailRe      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	angleAddrRe  = regexp.MustCompile(`<([^>]+)>`)
	numSuffixRe  = regexp.MustCompile(`[_\- ]?\d{1,3}$`)
	nameSplitRe  = regexp.MustCompile(`[_\- ]+`)
)

// phonePatterns are tried in fixed priority order; the first pattern that
// matches anywhere in the text wins, and its first match is used.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),              // dashed/dotted 10-digit
	regexp.MustCompile(`\b\(\d{3}\)\s*\d{3}[-.\s]?\d{4}\b`),              // parenthesized area code
	regexp.MustCompile(`\b\d{10}\b`),                                     // bare 10-digit
	regexp.MustCompile(`\b\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`), // international
}

// CleanText collapses all whitespace runs (including newlines) to single
// spaces and trims the result.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// NameFromFilename derives a human name from a resume filename: a leading
// "digits_" hash prefix is dropped, the extension and a trailing 1-3 digit
// counter are stripped, and the remaining tokens are title-cased.
//
//	"123_John_Doe_2.pdf" -> "John Doe"
func NameFromFilename(filename string) string {
	name := filepath.Base(filename)
	if prefix, rest, ok := strings.Cut(name, "_"); ok && isDigits(prefix) {
		name = rest
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = numSuffixRe.ReplaceAllString(name, "")

	var words []string
	for _, w := range nameSplitRe.Split(name, -1) {
		if w != "" {
			words = append(words, capitalize(w))
		}
	}
	return strings.Join(words, " ")
}

// nameRule is one step of the candidate-name fallback chain; it returns
// "" when the rule does not apply.
type nameRule func(r Rules, filename, text string) string

// nameRules are evaluated in order; the first non-empty result wins.
var nameRules = []nameRule{
	// Filename-derived name, unless empty or a generic placeholder.
	func(r Rules, filename, _ string) string {
		name := NameFromFilename(filename)
		if name == "" || strings.Contains(strings.ToLower(name), r.GenericNamePlaceholder) {
			return ""
		}
		return name
	},
	// First line of the document text, if short enough to be a name.
	func(r Rules, _, text string) string {
		line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
		line = strings.TrimSpace(line)
		if line != "" && len(line) < r.MaxNameLineLen {
			return line
		}
		return ""
	},
	// Last resort: the raw filename stem.
	func(_ Rules, filename, _ string) string {
		base := filepath.Base(filename)
		return strings.TrimSuffix(base, filepath.Ext(base))
	},
}

// CandidateName resolves the candidate's display name from the filename
// and document text via the ordered fallback chain. It never returns "".
func (r Rules) CandidateName(filename, text string) string {
	for _, rule := range nameRules {
		if name := rule(r, filename, text); name != "" {
			return name
		}
	}
	return filename
}

// ContactInfo extracts the first e-mail address and phone number found in
// the text. Missing fields yield the NotFound sentinel independently.
func ContactInfo(text string) (email, phone string) {
	email = NotFound
	if m := emailRe.FindString(text); m != "" {
		email = m
	}

	phone = NotFound
	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			phone = m
			break
		}
	}
	return email, phone
}

// SenderAddress pulls a bare e-mail address out of a free-form "From"
// header value: the angle-bracketed address wins, then the first
// email-shaped substring, then the trimmed raw value.
func SenderAddress(sender string) string {
	if sender == "" {
		return ""
	}
	if m := angleAddrRe.FindStringSubmatch(sender); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := emailRe.FindString(sender); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(sender)
}

// MatchKeywords records every domain keyword present in the text as a
// case-insensitive substring, grouped by domain tag in keyword-list order.
// Domains with no matches are omitted.
func (r Rules) MatchKeywords(text string) map[string][]string {
	matches := make(map[string][]string)
	lower := strings.ToLower(text)
	for _, domain := range r.Domains {
		for _, kw := range domain.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matches[domain.Tag] = append(matches[domain.Tag], kw)
			}
		}
	}
	return matches
}

var (
	positionOfRe = regexp.MustCompile(`(?i)position\s+(?:of|for)\s+([A-Za-z0-9 &\-+]+)`)
	lookingForRe = regexp.MustCompile(`(?i)looking for (?:an|a)?\s*([A-Za-z0-9 &\-+]+)`)
)

// titleRule is one step of the job-title inference chain.
type titleRule func(r Rules, jd string) string

var titleRules = []titleRule{
	func(_ Rules, jd string) string {
		if m := positionOfRe.FindStringSubmatch(jd); m != nil {
			return firstLine(m[1])
		}
		return ""
	},
	func(_ Rules, jd string) string {
		if m := lookingForRe.FindStringSubmatch(jd); m != nil {
			return firstLine(m[1])
		}
		return ""
	},
	func(r Rules, jd string) string {
		line := firstLine(jd)
		if len(line) < r.MaxTitleLineLen {
			return line
		}
		return ""
	},
}

// InferJobTitle guesses the job title from a job description via the
// ordered rule chain, falling back to the configured literal.
func (r Rules) InferJobTitle(jobDescription string) string {
	jd := strings.TrimSpace(jobDescription)
	if jd == "" {
		return r.FallbackJobTitle
	}
	for _, rule := range titleRules {
		if title := rule(r, jd); title != "" {
			return title
		}
	}
	return r.FallbackJobTitle
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
