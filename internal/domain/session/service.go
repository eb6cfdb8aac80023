package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

// TTL is the fixed session lifetime. Tokens carry their own expiry; there is
// no server-side revocation list, so logout is cookie deletion only.
const TTL = 7 * 24 * time.Hour

// CookieName is the client-held session cookie.
const CookieName = "auth-token"

type Servicer interface {
	Issue(userID int) (string, error)
	Authenticate(token string) (int, bool)
}

type claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a shared HMAC secret.
type Service struct {
	secret []byte
	log    *slog.Logger
	now    func() time.Time
}

func NewService(secret string, log *slog.Logger) *Service {
	return &Service{
		secret: []byte(secret),
		log:    log.With(slog.String("component", "session_service")),
		now:    time.Now,
	}
}

// Issue mints a signed token acting as the given account for the next TTL.
func (s *Service) Issue(userID int) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Authenticate verifies a token and returns the account it acts as. Every
// failure mode (bad signature, malformed, expired) yields ok=false; callers
// treat that as anonymous, never as an error.
func (s *Service) Authenticate(tokenString string) (int, bool) {
	if tokenString == "" {
		return 0, false
	}

	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil || !token.Valid {
		s.log.Debug("session token rejected", "error", err)
		return 0, false
	}

	return c.UserID, true
}
