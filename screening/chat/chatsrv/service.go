package chatsrv

import (
	"context"
	"strings"

	"github.com/introlligent/screener/internal/ai/completion"
	"github.com/introlligent/screener/pkg/logx"
	"github.com/introlligent/screener/screening/chat"
)

const systemPrompt = `
    Introlligent Assistant Rules
    Role: Support job seekers & recruiters with concise, structured answers.
    Features: Resume evaluation | Gmail resume fetch | ATS scoring | JD optimization | Networking support.
    Style: Use bullets/short sentences | Professional & friendly | Clear, direct | No long paragraphs.
    Constraints: Only Introlligent features | Keep brief & targeted | Prioritize clarity.
    Job Description Prompting: If a user asks for a JD, always ask for: Years of experience, Notice period constraints, Location, Salary range.
    `

// cannedReplies answer a few exact keywords without a model call.
var cannedReplies = map[string]string{
	"help": "How can I assist you?\n\n" +
		"**Resume Fetch & Evaluation Guide:**\n" +
		"1. **Enter Job Description:** Be specific about the role, skills, and experience.\n" +
		"2. **Click 'Fetch Resumes from Gmail':** This starts the process.\n" +
		"3. **Google Login:** A window will open for you to sign in.\n" +
		"4. **Grant Permissions:** Allow the app to read emails and attachments securely.\n" +
		"5. **View Evaluations:** See AI-powered analysis with scores and interview questions.\n\n" +
		"**Other Features:**\n" +
		"- **Resume Upload:** Manually upload a PDF for analysis.\n" +
		"- **ATS Scoring:** See how well a resume matches your job.\n" +
		"- **JD Optimization:** Get tips to improve your job descriptions.",
	"devops team": "**DevOps Team Support**\n\n" +
		"- Manages CI/CD pipelines, automation, and infrastructure monitoring.\n" +
		"- Ensures high availability, scalability, and security.\n" +
		"- Tools: Jenkins, Docker, Kubernetes, Terraform, Azure DevOps, AWS, GCP.",
	"ml team": "**Machine Learning (ML) Team Support**\n\n" +
		"- Builds, trains, and deploys machine learning models.\n" +
		"- Handles data preprocessing, feature engineering, and model evaluation.\n" +
		"- Tools: Python, TensorFlow, PyTorch, scikit-learn, and cloud ML platforms.",
}

// Completer generates an assistant reply from a conversation.
type Completer interface {
	Chat(ctx context.Context, messages []completion.Message) (string, error)
}

// Service answers assistant messages, keeping per-session history.
type Service struct {
	completions Completer
	store       chat.ConversationStore
}

func New(completions Completer, store chat.ConversationStore) *Service {
	return &Service{completions: completions, store: store}
}

// Respond handles one user message: canned keywords answer directly,
// everything else goes to the model with the recent history attached.
// The exchange is appended to the stored conversation either way.
func (s *Service) Respond(ctx context.Context, sessionID, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", chat.ErrEmptyMessage()
	}

	history, err := s.store.Load(ctx, sessionID)
	if err != nil {
		logx.Warnf("chat: failed to load history for %s: %v", sessionID, err)
		history = nil
	}

	if reply, ok := cannedReplies[strings.ToLower(strings.TrimSpace(userMessage))]; ok {
		s.record(ctx, sessionID, history, userMessage, reply)
		return reply, nil
	}

	messages := []completion.Message{{Role: completion.RoleSystem, Content: systemPrompt}}
	for _, m := range chat.Window(history) {
		messages = append(messages, completion.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, completion.Message{Role: completion.RoleUser, Content: userMessage})

	reply, err := s.completions.Chat(ctx, messages)
	if err != nil {
		return "", err
	}

	s.record(ctx, sessionID, history, userMessage, reply)
	return reply, nil
}

func (s *Service) record(ctx context.Context, sessionID string, history []chat.Message, userMessage, reply string) {
	history = append(history,
		chat.Message{Role: chat.RoleUser, Content: userMessage},
		chat.Message{Role: chat.RoleAssistant, Content: reply},
	)
	if err := s.store.Save(ctx, sessionID, history); err != nil {
		logx.Warnf("chat: failed to save history for %s: %v", sessionID, err)
	}
}
