package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authMW "securenest/internal/app/server/api/http/middleware/auth"
	"securenest/internal/domain/otp"
	"securenest/internal/domain/session"
	"securenest/internal/domain/user"
)

type Handler struct {
	users    user.Servicer
	otps     otp.Servicer
	sessions session.Servicer
	notifier user.Notifier
	log      *slog.Logger
	// guestMW gates signup/login style operations, authMW the rest.
	guestMW huma.Middlewares
	authMW  huma.Middlewares
}

func NewHandler(users user.Servicer, otps otp.Servicer, sessions session.Servicer,
	notifier user.Notifier, log *slog.Logger, guestMW, authMW huma.Middlewares) *Handler {
	return &Handler{
		users:    users,
		otps:     otps,
		sessions: sessions,
		notifier: notifier,
		log:      log,
		guestMW:  guestMW,
		authMW:   authMW,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signupOp(), h.signup)
	huma.Register(api, h.verifyOp(), h.verify)
	huma.Register(api, h.resendOp(), h.resend)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.forgotPasswordOp(), h.forgotPassword)
	huma.Register(api, h.resetPasswordOp(), h.resetPassword)
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.updateProfileOp(), h.updateProfile)
	huma.Register(api, h.updateAvatarOp(), h.updateAvatar)
	huma.Register(api, h.deleteAccountOp(), h.deleteAccount)
}

// signup captures the form and mails a verification code. No account exists
// until the code is verified.
func (h *Handler) signup(ctx context.Context, input *signupInput) (*messageOutput, error) {
	_, err := h.otps.Issue(ctx, input.Body.Email, &otp.SignupPayload{
		Username: input.Body.Username,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &messageOutput{
		Body: messageResponse{Message: "OTP sent to your email"},
	}, nil
}

func (h *Handler) verify(ctx context.Context, input *verifyInput) (*verifyOutput, error) {
	result, err := h.otps.Verify(ctx, input.Body.Email, input.Body.Code)
	if err != nil {
		return nil, h.mapError(err)
	}

	if !result.AccountCreated {
		// Reset flow: the caller proceeds to reset-password.
		return &verifyOutput{
			Body: verifyResponse{Message: "OTP verified"},
		}, nil
	}

	token, err := h.sessions.Issue(result.User.ID)
	if err != nil {
		h.log.Error("issue session failed", "error", err)
		return nil, huma.Error500InternalServerError("failed to create session")
	}

	h.notifier.Record(ctx, result.User.ID, "Welcome to SecureNest",
		"Your account was created successfully.")

	return &verifyOutput{
		SetCookie: []http.Cookie{sessionCookie(token)},
		Body: verifyResponse{
			Message: "Account created",
			User:    &result.User,
		},
	}, nil
}

func (h *Handler) resend(ctx context.Context, input *resendInput) (*messageOutput, error) {
	if _, err := h.otps.Resend(ctx, input.Body.Email); err != nil {
		return nil, h.mapError(err)
	}

	return &messageOutput{
		Body: messageResponse{Message: "A new OTP has been sent to your email"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*sessionOutput, error) {
	u, err := h.users.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, h.mapError(err)
	}

	token, err := h.sessions.Issue(u.ID)
	if err != nil {
		h.log.Error("issue session failed", "error", err)
		return nil, huma.Error500InternalServerError("failed to create session")
	}

	return &sessionOutput{
		SetCookie: sessionCookie(token),
		Body:      userResponse{User: u},
	}, nil
}

// logout clears the cookie. Tokens are not tracked server-side, so there is
// nothing else to revoke.
func (h *Handler) logout(_ context.Context, _ *struct{}) (*logoutOutput, error) {
	return &logoutOutput{
		SetCookie: clearedCookie(),
		Body:      messageResponse{Message: "Logged out"},
	}, nil
}

func (h *Handler) forgotPassword(ctx context.Context, input *forgotInput) (*messageOutput, error) {
	if _, err := h.otps.Issue(ctx, input.Body.Email, nil); err != nil {
		return nil, h.mapError(err)
	}

	return &messageOutput{
		Body: messageResponse{Message: "OTP sent to your email"},
	}, nil
}

func (h *Handler) resetPassword(ctx context.Context, input *resetInput) (*messageOutput, error) {
	if err := h.users.ResetPassword(ctx, input.Body.Email, input.Body.NewPassword); err != nil {
		return nil, h.mapError(err)
	}

	return &messageOutput{
		Body: messageResponse{Message: "Password reset successfully"},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	userID, ok := authMW.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.users.Get(ctx, userID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &meOutput{Body: userResponse{User: u}}, nil
}

func (h *Handler) updateProfile(ctx context.Context, input *profileInput) (*meOutput, error) {
	userID, ok := authMW.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.users.UpdateProfile(ctx, userID, input.Body.Username, input.Body.Phone)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &meOutput{Body: userResponse{User: u}}, nil
}

func (h *Handler) updateAvatar(ctx context.Context, input *avatarInput) (*meOutput, error) {
	userID, ok := authMW.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	data, err := base64.StdEncoding.DecodeString(input.Body.Data)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("data must be valid base64")
	}

	u, err := h.users.UpdateAvatar(ctx, userID, data, input.Body.Filename, input.Body.ContentType)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &meOutput{Body: userResponse{User: u}}, nil
}

// deleteAccount removes the account with its documents and notifications and
// ends the session in one step.
func (h *Handler) deleteAccount(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	userID, ok := authMW.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.users.Delete(ctx, userID); err != nil {
		return nil, h.mapError(err)
	}

	return &logoutOutput{
		SetCookie: clearedCookie(),
		Body:      messageResponse{Message: "Account deleted"},
	}, nil
}

func sessionCookie(token string) http.Cookie {
	return http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func clearedCookie() http.Cookie {
	return http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// mapError translates domain sentinels into HTTP status errors without
// leaking which side of a credential pair was wrong. Anything unexpected is
// logged with full detail and returned as a bare 500.
func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidAuth):
		return huma.Error401Unauthorized("Invalid email or password")
	case errors.Is(err, user.ErrDuplicateEmail):
		return huma.Error409Conflict("An account with this email already exists")
	case errors.Is(err, user.ErrWeakPassword):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, user.ErrInvalidInput), errors.Is(err, otp.ErrInvalidInput),
		errors.Is(err, otp.ErrEmailRequired):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("Account not found")
	case errors.Is(err, otp.ErrInvalidOrExpired):
		return huma.Error401Unauthorized("Invalid or expired OTP")
	case errors.Is(err, otp.ErrSessionTimedOut):
		return huma.Error410Gone("Session timed out. Please start over.")
	default:
		h.log.Error("auth operation failed", "error", err)
		return huma.Error500InternalServerError("internal server error")
	}
}
