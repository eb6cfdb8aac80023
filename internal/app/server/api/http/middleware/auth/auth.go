package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"securenest/internal/domain/session"
)

// Auth gates handlers behind the session cookie. The token travels in an
// httpOnly cookie rather than an Authorization header, so browsers attach it
// on every request without script access.
type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const UserIDKey contextKey = "userID"

// Middleware rejects requests without a valid session cookie and stores the
// account id in the request context for handlers.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cookie, err := huma.ReadCookie(ctx, session.CookieName)
		if err != nil {
			reject(ctx)
			return
		}

		userID, ok := a.session.Authenticate(cookie.Value)
		if !ok {
			a.log.Debug("rejected session cookie")
			reject(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), UserIDKey, userID)
		next(huma.WithContext(ctx, newCtx))
	}
}

// GuestOnly is the inverse gate: signup and login make no sense for an
// already authenticated caller.
func (a *Auth) GuestOnly() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if cookie, err := huma.ReadCookie(ctx, session.CookieName); err == nil {
			if _, ok := a.session.Authenticate(cookie.Value); ok {
				ctx.SetStatus(http.StatusForbidden)
				ctx.SetHeader("Content-Type", "application/json")
				_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
					"error": "Already authenticated",
				})
				return
			}
		}
		next(ctx)
	}
}

func reject(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
}

func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}
