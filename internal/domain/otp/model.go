package otp

import "time"

// PendingOTP is a live verification challenge for one email. At most one
// exists per address; issuing a new one supersedes the old.
type PendingOTP struct {
	ID        int
	Email     string
	Code      string
	CreatedAt time.Time
	// ExpiresAt is an absolute deadline; the record is deleted once it
	// passes, not merely ignored.
	ExpiresAt time.Time

	// Signup payload, present only for signup flows. The password arrives
	// here already hashed.
	SignupUsername     string
	SignupPasswordHash string
}

// HasSignupPayload reports whether verification should create an account.
func (p PendingOTP) HasSignupPayload() bool {
	return p.SignupUsername != "" && p.SignupPasswordHash != ""
}
