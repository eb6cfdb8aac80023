package user

import "time"

// User is an account record. Password holds the bcrypt hash only; plaintext
// passwords never reach the repository.
type User struct {
	ID              int       `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Password        string    `json:"-"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	AvatarObjectKey string    `json:"-"`
	Phone           string    `json:"phone,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
