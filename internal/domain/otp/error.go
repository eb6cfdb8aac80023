package otp

import "errors"

var (
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidInput  = errors.New("email and otp are required")
	// ErrInvalidOrExpired deliberately covers both a wrong code and an
	// expired/consumed one, so callers cannot tell which.
	ErrInvalidOrExpired = errors.New("invalid or expired otp")
	ErrSessionTimedOut  = errors.New("session timed out, please sign up again")
	ErrNoPending        = errors.New("no pending otp")
)
