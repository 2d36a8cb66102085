package chatapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/introlligent/screener/pkg/logx"
	"github.com/introlligent/screener/screening/chat/chatsrv"
)

const sessionCookie = "chat_session_id"

type ChatHandlers struct {
	service *chatsrv.Service
}

func NewChatHandlers(service *chatsrv.Service) *ChatHandlers {
	return &ChatHandlers{service: service}
}

func (h *ChatHandlers) RegisterRoutes(app *fiber.App) {
	app.Post("/chat", h.Chat)
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat answers one assistant message.
// POST /chat
func (h *ChatHandlers) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"response": "Please provide a message."})
	}
	if req.Message == "" {
		return c.JSON(fiber.Map{"response": "Please provide a message."})
	}

	sessionID := c.Cookies(sessionCookie)
	if sessionID == "" {
		sessionID = uuid.New().String()
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    sessionID,
			HTTPOnly: true,
			SameSite: "Lax",
			Expires:  time.Now().Add(7 * 24 * time.Hour),
		})
	}

	reply, err := h.service.Respond(c.Context(), sessionID, req.Message)
	if err != nil {
		logx.Warnf("chat: %v", err)
		return c.JSON(fiber.Map{
			"response": "I'm sorry, I encountered an error. Please try again later.",
		})
	}

	return c.JSON(fiber.Map{"response": reply})
}
