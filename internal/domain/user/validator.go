package user

import (
	"fmt"
	"strings"
	"unicode"
)

const minPasswordLen = 8

// commonPatterns are substrings that disqualify a password outright,
// matched case-insensitively.
var commonPatterns = []string{
	"password",
	"123456",
	"123456789",
	"qwerty",
	"abc123",
	"111111",
	"letmein",
	"welcome",
	"monkey",
	"admin",
}

var (
	numericRuns = []string{"0123", "1234", "2345", "3456", "4567", "5678", "6789"}
	alphaRuns   = []string{"abcd", "bcde", "cdef", "defg", "efgh", "fghi", "ghij"}
)

// ValidateSignup checks the fields collected before an OTP is issued for a
// signup. The email/uniqueness check happens against the repository in the
// OTP flow, not here.
func ValidateSignup(username, email, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}
	if IsWeak(password) {
		return ErrWeakPassword
	}
	return nil
}

// IsWeak reports whether a password fails the strength policy: minimum
// length, character variety, known-weak substrings, repeated characters and
// ascending runs.
func IsWeak(password string) bool {
	if len(password) < minPasswordLen {
		return true
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	variety := 0
	for _, has := range []bool{hasLower, hasUpper, hasDigit, hasSpecial} {
		if has {
			variety++
		}
	}
	if variety < 3 {
		return true
	}

	lowered := strings.ToLower(password)
	for _, p := range commonPatterns {
		if strings.Contains(lowered, p) {
			return true
		}
	}

	if isSingleRune(password) {
		return true
	}

	for _, run := range numericRuns {
		if strings.Contains(password, run) {
			return true
		}
	}
	for _, run := range alphaRuns {
		if strings.Contains(lowered, run) {
			return true
		}
	}

	return false
}

func isSingleRune(s string) bool {
	var first rune
	for i, r := range s {
		if i == 0 {
			first = r
			continue
		}
		if r != first {
			return false
		}
	}
	return true
}
