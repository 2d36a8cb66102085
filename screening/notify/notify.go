package notify

import (
	"context"
	"fmt"
)

// Kind selects which decision email to send.
type Kind string

const (
	KindAccept Kind = "accept"
	KindReject Kind = "reject"
)

// Email is a rendered plain-text message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a rendered email.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// AcceptanceEmail renders the shortlist notification.
func AcceptanceEmail(to, candidateName, jobTitle string) Email {
	return Email{
		To:      to,
		Subject: fmt.Sprintf("Congratulations %s - Application Accepted!", candidateName),
		Body: fmt.Sprintf(`Dear %s,
We are pleased to inform you that your application for the position of %s has been shortlisted. 🎉
Our HR team was impressed with your skills and background. We will be contacting you shortly with the next steps in the hiring process.
Best regards,
HR Team
`, candidateName, jobTitle),
	}
}

// RejectionEmail renders the not-shortlisted notification.
func RejectionEmail(to, candidateName, jobTitle string) Email {
	return Email{
		To:      to,
		Subject: fmt.Sprintf("Application Update - %s", jobTitle),
		Body: fmt.Sprintf(`Dear %s,
Thank you for applying for the position of %s. We truly appreciate the time and effort you put into the application process.
After careful consideration, we regret to inform you that your profile has not been shortlisted at this stage. However, we encourage you to apply for future opportunities with us.
Best wishes,
HR Team
`, candidateName, jobTitle),
	}
}

// DecisionEmail renders the email for a kind, or an error for an
// unknown kind.
func DecisionEmail(kind Kind, to, candidateName, jobTitle string) (Email, error) {
	switch kind {
	case KindAccept:
		return AcceptanceEmail(to, candidateName, jobTitle), nil
	case KindReject:
		return RejectionEmail(to, candidateName, jobTitle), nil
	default:
		return Email{}, ErrInvalidKind(string(kind))
	}
}
