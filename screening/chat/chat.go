package chat

// HistoryLimit is how many messages a conversation retains.
const HistoryLimit = 20

// HistoryWindow is how many stored messages accompany a new prompt.
const HistoryWindow = 18

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Bound trims a history to the retention limit, keeping the newest
// messages.
func Bound(history []Message) []Message {
	if len(history) <= HistoryLimit {
		return history
	}
	return history[len(history)-HistoryLimit:]
}

// Window returns the most recent messages to send alongside a prompt.
func Window(history []Message) []Message {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}
