package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSender(t *testing.T) {
	rules := DefaultRules()

	assert.True(t, rules.ValidSender("jane.doe@example.com"))
	assert.False(t, rules.ValidSender("noreply@example.com"))
	assert.False(t, rules.ValidSender("NoReply@Example.com"))
	assert.False(t, rules.ValidSender("jobs-newsletter@example.com"))
	assert.False(t, rules.ValidSender("automated@example.com"))
}

func TestIsResumeFile(t *testing.T) {
	rules := DefaultRules()

	assert.True(t, rules.IsResumeFile("jane_resume.pdf", "hello"))
	assert.True(t, rules.IsResumeFile("jane.pdf", "My job application"))
	assert.True(t, rules.IsResumeFile("CV_Jane.pdf", ""))
	assert.False(t, rules.IsResumeFile("jane.pdf", "hello"))
	// excluded keyword in the filename wins even with a matching subject
	assert.False(t, rules.IsResumeFile("lab_report.pdf", "resume attached"))
	assert.False(t, rules.IsResumeFile("user_manual.pdf", "application"))
}

func TestSelectFiltersAndDedupes(t *testing.T) {
	rules := DefaultRules()

	messages := []Message{
		{
			ID:     "1",
			Sender: "Jane <jane@example.com>",
			Subject: "Application for Data Engineer",
			Attachments: []Attachment{
				{Filename: "jane_resume.pdf", Data: []byte("pdf1")},
				{Filename: "cover_letter.docx", Data: []byte("doc")},
			},
		},
		{
			ID:      "2",
			Sender:  "noreply@jobboard.com",
			Subject: "New resume for you",
			Attachments: []Attachment{
				{Filename: "candidate_resume.pdf", Data: []byte("pdf2")},
			},
		},
		{
			// same sender as message 1, skipped wholesale
			ID:      "3",
			Sender:  "jane <JANE@example.com>",
			Subject: "Updated resume",
			Attachments: []Attachment{
				{Filename: "jane_resume_v2.pdf", Data: []byte("pdf3")},
			},
		},
		{
			ID:      "4",
			Sender:  "bob@example.com",
			Subject: "Seeking opportunities",
			Attachments: []Attachment{
				{Filename: "bob_cv.pdf", Data: []byte("pdf4")},
			},
		},
	}

	resumes := rules.Select(messages)

	assert.Len(t, resumes, 2)
	assert.Equal(t, "jane_resume.pdf", resumes[0].Filename)
	assert.Equal(t, "bob_cv.pdf", resumes[1].Filename)
}

func TestSelectSenderDedupeSkipsWholeMessage(t *testing.T) {
	rules := DefaultRules()

	// The first message from a sender has no acceptable attachment,
	// but the sender is still marked processed and the second message
	// from them is dropped.
	messages := []Message{
		{
			ID:      "1",
			Sender:  "jane@example.com",
			Subject: "hello",
			Attachments: []Attachment{
				{Filename: "notes.pdf"},
			},
		},
		{
			ID:      "2",
			Sender:  "jane@example.com",
			Subject: "resume attached",
			Attachments: []Attachment{
				{Filename: "jane_resume.pdf"},
			},
		},
	}

	assert.Empty(t, rules.Select(messages))
}

func TestSelectFirstMatchPerSender(t *testing.T) {
	rules := DefaultRules()

	// Two qualifying PDFs in one message yield a single resume, the
	// first in attachment order.
	messages := []Message{
		{
			ID:      "1",
			Sender:  "jane@example.com",
			Subject: "Application for Data Engineer",
			Attachments: []Attachment{
				{Filename: "jane_resume.pdf", Data: []byte("pdf1")},
				{Filename: "jane_cv.pdf", Data: []byte("pdf2")},
			},
		},
	}

	resumes := rules.Select(messages)

	assert.Len(t, resumes, 1)
	assert.Equal(t, "jane_resume.pdf", resumes[0].Filename)
}

func TestSelectMessageCap(t *testing.T) {
	rules := DefaultRules()
	rules.MaxMessages = 1

	messages := []Message{
		{ID: "1", Sender: "a@example.com", Subject: "resume", Attachments: []Attachment{{Filename: "a_cv.pdf"}}},
		{ID: "2", Sender: "b@example.com", Subject: "resume", Attachments: []Attachment{{Filename: "b_cv.pdf"}}},
	}

	resumes := rules.Select(messages)
	assert.Len(t, resumes, 1)
	assert.Equal(t, "a@example.com", resumes[0].Sender)
}
