package intakeapi

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/introlligent/screener/pkg/kernel"
)

const sessionCookie = "screener_session"

// SessionService issues and verifies signed session cookies. A session
// only proves cookie ownership; the OAuth token it maps to lives in the
// token store.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionService(secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Issue mints a signed token for a fresh session ID.
func (s *SessionService) Issue() (sessionID, signed string, err error) {
	sid := kernel.NewSessionID().String()
	claims := sessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err = token.SignedString(s.secret)
	if err != nil {
		return "", "", err
	}
	return sid, signed, nil
}

// Parse verifies a signed token and returns the session ID.
func (s *SessionService) Parse(signed string) (string, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(signed, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.SessionID, nil
}

// CookieName returns the session cookie name.
func (s *SessionService) CookieName() string { return sessionCookie }

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration { return s.ttl }
