package intake

import "strings"

// FilterRules decides which messages and attachments count as resume
// submissions. The zero value rejects everything; use DefaultRules.
type FilterRules struct {
	// ExcludedSenders are substrings that mark automated senders.
	ExcludedSenders []string
	// ResumeKeywords qualify a subject or filename as a resume.
	ResumeKeywords []string
	// ExcludedKeywords disqualify a filename even when it matches.
	ExcludedKeywords []string
	// MaxMessages caps how many messages a batch considers.
	MaxMessages int
}

// DefaultRules returns the production filter configuration.
func DefaultRules() FilterRules {
	return FilterRules{
		ExcludedSenders: []string{
			"noreply", "do-not-reply", "system", "newsletter",
			"notification", "alert", "auto",
		},
		ResumeKeywords: []string{
			"resume", "cv", "profile", "biodata", "application", "job",
			"candidate", "bio data", "my details", "applying", "seeking",
			"submission",
		},
		ExcludedKeywords: []string{
			"manual", "form", "insurance", "doc", "brochure", "lab",
			"syllabus", "report",
		},
		MaxMessages: 20,
	}
}

// ValidSender reports whether the sender is a real person rather than
// an automated address. Matching is case-insensitive substring.
func (r FilterRules) ValidSender(sender string) bool {
	s := strings.ToLower(sender)
	for _, excl := range r.ExcludedSenders {
		if strings.Contains(s, excl) {
			return false
		}
	}
	return true
}

// IsResumeFile reports whether an attachment looks like a resume: the
// subject or filename contains a resume keyword and the filename
// contains no excluded keyword. The PDF extension check happens
// separately so non-PDF attachments never reach here.
func (r FilterRules) IsResumeFile(filename, subject string) bool {
	name := strings.ToLower(filename)
	subj := strings.ToLower(subject)

	subjectOK := containsAny(subj, r.ResumeKeywords)
	filenameOK := containsAny(name, r.ResumeKeywords)
	excluded := containsAny(name, r.ExcludedKeywords)

	return (subjectOK || filenameOK) && !excluded
}

// Select walks a batch of messages in order and returns the accepted
// resumes, at most one per sender (first qualifying attachment wins).
// At most MaxMessages messages are considered. A sender whose message
// was already processed in this batch is skipped entirely, even if the
// earlier message yielded no accepted attachments.
func (r FilterRules) Select(messages []Message) []Resume {
	if r.MaxMessages > 0 && len(messages) > r.MaxMessages {
		messages = messages[:r.MaxMessages]
	}

	seen := make(map[string]struct{})
	var resumes []Resume

	for _, msg := range messages {
		sender := strings.ToLower(msg.Sender)
		if !r.ValidSender(sender) {
			continue
		}
		if _, dup := seen[sender]; dup {
			continue
		}
		seen[sender] = struct{}{}

		for _, att := range msg.Attachments {
			if !strings.HasSuffix(strings.ToLower(att.Filename), ".pdf") {
				continue
			}
			if !r.IsResumeFile(att.Filename, msg.Subject) {
				continue
			}
			resumes = append(resumes, Resume{
				Filename: att.Filename,
				Data:     att.Data,
				Sender:   sender,
				Subject:  msg.Subject,
			})
			break
		}
	}
	return resumes
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
