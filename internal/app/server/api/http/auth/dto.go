package auth

import (
	"net/http"

	"securenest/internal/domain/user"
)

type signupInput struct {
	Body signupRequest
}

type signupRequest struct {
	Username string `json:"username" doc:"Display name" minLength:"1"`
	Email    string `json:"email" doc:"Email address"`
	Password string `json:"password" doc:"Password, at least 8 characters"`
}

type messageOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}

type verifyInput struct {
	Body verifyRequest
}

type verifyRequest struct {
	Email string `json:"email" doc:"Email address the code was sent to"`
	Code  string `json:"code" doc:"4-digit verification code" example:"4821"`
}

// verifyOutput sets the session cookie only on the signup flow; the slice
// stays empty otherwise.
type verifyOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      verifyResponse
}

type verifyResponse struct {
	Message string     `json:"message"`
	User    *user.User `json:"user,omitempty"`
}

type resendInput struct {
	Body resendRequest
}

type resendRequest struct {
	Email string `json:"email"`
}

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      userResponse
}

type userResponse struct {
	User user.User `json:"user"`
}

type logoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      messageResponse
}

type forgotInput struct {
	Body resendRequest
}

type resetInput struct {
	Body resetRequest
}

type resetRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password" doc:"Replacement password, at least 8 characters"`
}

type meOutput struct {
	Body userResponse
}

type profileInput struct {
	Body profileRequest
}

type profileRequest struct {
	Username string `json:"username" minLength:"1"`
	Phone    string `json:"phone,omitempty"`
}

type avatarInput struct {
	Body avatarRequest
}

type avatarRequest struct {
	Data        string `json:"data" doc:"Base64-encoded image bytes" minLength:"1"`
	Filename    string `json:"filename" minLength:"1"`
	ContentType string `json:"content_type,omitempty"`
}
