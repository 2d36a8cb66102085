package intakeinfra

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/introlligent/screener/pkg/logx"
	"github.com/introlligent/screener/screening/intake"
)

// GmailSource lists resume messages from a Gmail mailbox using the
// user's OAuth token.
type GmailSource struct {
	oauthConfig *oauth2.Config
	maxMessages int
}

func NewGmailSource(cfg *oauth2.Config, maxMessages int) *GmailSource {
	if maxMessages <= 0 {
		maxMessages = 20
	}
	return &GmailSource{oauthConfig: cfg, maxMessages: maxMessages}
}

// Fetch searches for messages with PDF attachments matching the query
// and returns them with attachment bodies downloaded. Messages that
// fail to load are skipped.
func (s *GmailSource) Fetch(ctx context.Context, token *oauth2.Token, q intake.Query) ([]intake.Message, error) {
	httpClient := s.oauthConfig.Client(ctx, token)
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, intake.ErrFetchFailed(err)
	}

	query := fmt.Sprintf("has:attachment filename:pdf after:%d", q.After.Unix())
	if q.Term != "" {
		query += fmt.Sprintf(" %q", q.Term)
	}

	list, err := svc.Users.Messages.List("me").Q(query).Context(ctx).Do()
	if err != nil {
		return nil, intake.ErrFetchFailed(err)
	}

	refs := list.Messages
	if len(refs) > s.maxMessages {
		refs = refs[:s.maxMessages]
	}

	var messages []intake.Message
	for _, ref := range refs {
		msg, err := svc.Users.Messages.Get("me", ref.Id).Format("full").Context(ctx).Do()
		if err != nil {
			logx.Warnf("gmail: skipping message %s: %v", ref.Id, err)
			continue
		}

		m := intake.Message{
			ID:      msg.Id,
			Sender:  headerValue(msg.Payload, "From"),
			Subject: headerValue(msg.Payload, "Subject"),
		}
		if m.Subject == "" {
			m.Subject = "(No Subject)"
		}

		collectAttachments(ctx, svc, msg.Id, msg.Payload, &m)
		messages = append(messages, m)
	}
	return messages, nil
}

func headerValue(payload *gmail.MessagePart, name string) string {
	if payload == nil {
		return ""
	}
	for _, h := range payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// collectAttachments walks the MIME tree and downloads every PDF part.
func collectAttachments(ctx context.Context, svc *gmail.Service, msgID string, part *gmail.MessagePart, m *intake.Message) {
	if part == nil {
		return
	}
	if part.Filename != "" && strings.HasSuffix(strings.ToLower(part.Filename), ".pdf") && part.Body != nil {
		data, err := attachmentData(ctx, svc, msgID, part.Body)
		if err != nil {
			logx.Warnf("gmail: skipping attachment %s: %v", part.Filename, err)
		} else if len(data) > 0 {
			m.Attachments = append(m.Attachments, intake.Attachment{
				Filename: part.Filename,
				Data:     data,
			})
		}
	}
	for _, child := range part.Parts {
		collectAttachments(ctx, svc, msgID, child, m)
	}
}

func attachmentData(ctx context.Context, svc *gmail.Service, msgID string, body *gmail.MessagePartBody) ([]byte, error) {
	encoded := body.Data
	if encoded == "" && body.AttachmentId != "" {
		att, err := svc.Users.Messages.Attachments.Get("me", msgID, body.AttachmentId).Context(ctx).Do()
		if err != nil {
			return nil, err
		}
		encoded = att.Data
	}
	if encoded == "" {
		return nil, nil
	}
	return decodeBody(encoded)
}

// decodeBody decodes base64url body data. Gmail usually omits padding,
// but padded input is tolerated too.
func decodeBody(encoded string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
}
