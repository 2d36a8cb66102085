package intakeapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/introlligent/screener/pkg/logx"
	"github.com/introlligent/screener/screening/intake"
)

// AuthHandlers serves the Gmail OAuth flow: redirect out, exchange the
// code on callback, and park the token in the store under a fresh
// signed session.
type AuthHandlers struct {
	oauthConfig *oauth2.Config
	sessions    *SessionService
	tokens      intake.TokenStore
}

func NewAuthHandlers(cfg *oauth2.Config, sessions *SessionService, tokens intake.TokenStore) *AuthHandlers {
	return &AuthHandlers{
		oauthConfig: cfg,
		sessions:    sessions,
		tokens:      tokens,
	}
}

func (h *AuthHandlers) RegisterRoutes(app *fiber.App) {
	app.Get("/authenticate", h.Authenticate)
	app.Get("/callback", h.Callback)
	app.Get("/auth/success", h.AuthSuccess)
	app.Get("/auth/status", h.AuthStatus)
	app.Post("/logout", h.Logout)
}

// Authenticate redirects the browser to Google's consent screen.
// GET /authenticate
func (h *AuthHandlers) Authenticate(c *fiber.Ctx) error {
	state := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_state",
		Value:    state,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(10 * time.Minute),
	})

	url := h.oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return c.Redirect(url, fiber.StatusTemporaryRedirect)
}

// Callback exchanges the authorization code, stores the token, and
// sets the session cookie.
// GET /callback?code=...&state=...
func (h *AuthHandlers) Callback(c *fiber.Ctx) error {
	if errParam := c.Query("error"); errParam != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "authorization denied: " + errParam,
		})
	}

	state := c.Query("state")
	if state == "" || state != c.Cookies("oauth_state") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid state parameter",
		})
	}

	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing authorization code",
		})
	}

	token, err := h.oauthConfig.Exchange(c.Context(), code)
	if err != nil {
		logx.Errorf("oauth exchange failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to exchange authorization code",
		})
	}

	sessionID, signed, err := h.sessions.Issue()
	if err != nil {
		return err
	}
	if err := h.tokens.Save(c.Context(), sessionID, token); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.sessions.CookieName(),
		Value:    signed,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(h.sessions.TTL()),
	})
	c.Cookie(&fiber.Cookie{
		Name:    "oauth_state",
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
	})

	return c.Redirect("/auth/success", fiber.StatusTemporaryRedirect)
}

// AuthSuccess is the post-login landing page.
// GET /auth/success
func (h *AuthHandlers) AuthSuccess(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Gmail connected successfully. You can now fetch resumes.",
	})
}

// AuthStatus reports whether the caller has a live mailbox connection.
// GET /auth/status
func (h *AuthHandlers) AuthStatus(c *fiber.Ctx) error {
	sessionID, err := h.SessionID(c)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	if _, err := h.tokens.Get(c.Context(), sessionID); err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{"authenticated": true})
}

// Logout drops the stored token and clears the session cookie.
// POST /logout
func (h *AuthHandlers) Logout(c *fiber.Ctx) error {
	if sessionID, err := h.SessionID(c); err == nil {
		_ = h.tokens.Delete(c.Context(), sessionID)
	}
	c.Cookie(&fiber.Cookie{
		Name:    h.sessions.CookieName(),
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"message": "logged out"})
}

// SessionID extracts and verifies the session from the request cookie.
func (h *AuthHandlers) SessionID(c *fiber.Ctx) (string, error) {
	signed := c.Cookies(h.sessions.CookieName())
	if signed == "" {
		return "", intake.ErrNotAuthenticated()
	}
	sessionID, err := h.sessions.Parse(signed)
	if err != nil {
		return "", intake.ErrNotAuthenticated()
	}
	return sessionID, nil
}
