package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) signupOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-signup",
		Method:      http.MethodPost,
		Path:        "/api/auth/signup",
		Summary:     "Start signup",
		Description: "Validates the signup form and mails a verification code. The account is created only after the code is verified.",
		Tags:        []string{"auth"},
		Middlewares: h.guestMW,
	}
}

func (h *Handler) verifyOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-otp-verify",
		Method:      http.MethodPost,
		Path:        "/api/auth/otp/verify",
		Summary:     "Verify an OTP code",
		Description: "Completes a signup (creating the account and session) or unlocks a password reset.",
		Tags:        []string{"auth"},
		Middlewares: h.guestMW,
	}
}

func (h *Handler) resendOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-otp-resend",
		Method:      http.MethodPost,
		Path:        "/api/auth/otp/resend",
		Summary:     "Resend the OTP code",
		Description: "Replaces the pending code without extending its expiry.",
		Tags:        []string{"auth"},
		Middlewares: h.guestMW,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Log in",
		Tags:        []string{"auth"},
		Middlewares: h.guestMW,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-logout",
		Method:      http.MethodPost,
		Path:        "/api/auth/logout",
		Summary:     "Log out",
		Tags:        []string{"auth"},
		Middlewares: h.authMW,
	}
}

func (h *Handler) forgotPasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-forgot-password",
		Method:      http.MethodPost,
		Path:        "/api/auth/forgot-password",
		Summary:     "Start a password reset",
		Tags:        []string{"auth"},
		Middlewares: h.guestMW,
	}
}

func (h *Handler) resetPasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-reset-password",
		Method:      http.MethodPost,
		Path:        "/api/auth/reset-password",
		Summary:     "Set a new password",
		Tags:        []string{"auth"},
		Middlewares: h.guestMW,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/api/auth/me",
		Summary:     "Current account",
		Tags:        []string{"auth"},
		Middlewares: h.authMW,
	}
}

func (h *Handler) updateProfileOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-update-profile",
		Method:      http.MethodPut,
		Path:        "/api/auth/profile",
		Summary:     "Update profile fields",
		Tags:        []string{"auth"},
		Middlewares: h.authMW,
	}
}

func (h *Handler) updateAvatarOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-update-avatar",
		Method:      http.MethodPut,
		Path:        "/api/auth/avatar",
		Summary:     "Replace the avatar image",
		Description: "Accepts base64-encoded image bytes. The previous avatar object is removed from storage first.",
		Tags:        []string{"auth"},
		Middlewares: h.authMW,
	}
}

func (h *Handler) deleteAccountOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-delete-account",
		Method:      http.MethodDelete,
		Path:        "/api/auth/account",
		Summary:     "Delete the account",
		Description: "Removes the account together with its documents and notifications.",
		Tags:        []string{"auth"},
		Middlewares: h.authMW,
	}
}
