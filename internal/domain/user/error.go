package user

import "errors"

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrWeakPassword   = errors.New("password is too weak")
	ErrInvalidAuth    = errors.New("invalid credentials")
	ErrInvalidInput   = errors.New("invalid input")
)
