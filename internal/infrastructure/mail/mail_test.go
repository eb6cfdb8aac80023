package mail

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	gomail "gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func newTestSender(d dialer) *Sender {
	return &Sender{
		dialer: d,
		from:   "noreply@securenest.io",
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSender_SendOTP(t *testing.T) {
	d := &fakeDialer{}
	s := newTestSender(d)

	err := s.SendOTP(context.Background(), "me@example.com", "4821", "signup")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"me@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Your OTP Code"}, m.GetHeader("Subject"))
}

func TestSender_SendOTP_DialFailure(t *testing.T) {
	d := &fakeDialer{err: errors.New("smtp: connection refused")}
	s := newTestSender(d)

	err := s.SendOTP(context.Background(), "me@example.com", "4821", "signup")
	assert.Error(t, err)
}

func TestGenerateOTPEmail_Signup(t *testing.T) {
	body := GenerateOTPEmail("4821", "signup")

	assert.Contains(t, body, "4821")
	assert.Contains(t, body, "Verify Your Email")
	assert.Contains(t, body, "expires in 5 minutes")
}

func TestGenerateOTPEmail_Resend(t *testing.T) {
	body := GenerateOTPEmail("9377", "resend")

	assert.Contains(t, body, "9377")
	assert.Contains(t, body, "Your New OTP Code")
	assert.Contains(t, body, "no longer valid")
}
