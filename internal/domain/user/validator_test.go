package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWeak(t *testing.T) {
	tests := []struct {
		name     string
		password string
		weak     bool
	}{
		{"too short", "Ab1!", true},
		{"only two character classes", "axbyczAXBYCZ", true},
		{"contains password", "password1A!", true},
		{"contains qwerty", "QwertyA!9x", true},
		{"contains admin", "SuperAdmin99!", true},
		{"single repeated char", "aaaaaaaa", true},
		{"ascending digits", "Zx!15678", true},
		{"ascending letters", "Xabcd99!", true},
		{"numeric run in middle", "abcd5678", true},
		{"strong mixed", "Tr0ub4dor!9", false},
		{"strong no special", "K9mRw2pQz", false},
		{"strong with symbols", "vN8#xQ!mT2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.weak, IsWeak(tt.password), "password: %s", tt.password)
		})
	}
}

func TestValidateSignup(t *testing.T) {
	assert.NoError(t, ValidateSignup("alice", "alice@example.com", "Tr0ub4dor!9"))

	err := ValidateSignup("", "alice@example.com", "Tr0ub4dor!9")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	err = ValidateSignup("alice", "", "Tr0ub4dor!9")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	err = ValidateSignup("alice", "alice@example.com", "password1")
	assert.True(t, errors.Is(err, ErrWeakPassword))
}
