package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"securenest/internal/domain/user"
)

// TTL is the absolute lifetime of a code from issuance.
const TTL = 5 * time.Minute

// Mail template variants for code delivery.
const (
	KindSignup = "signup"
	KindResend = "resend"
)

// Sender delivers a code to an address. A delivery failure fails the
// enclosing operation; there are no retries.
type Sender interface {
	SendOTP(ctx context.Context, email, code, kind string) error
}

// Directory is the slice of the account store the ledger needs: existence
// checks during issue and account creation on a verified signup.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (user.User, error)
	Create(ctx context.Context, username, email, passwordHash string) (user.User, error)
}

// SignupPayload carries the signup form captured before verification. The
// password is plaintext here and hashed before it is stored on the record.
type SignupPayload struct {
	Username string
	Password string
}

// Result is the outcome of a successful verification.
type Result struct {
	// AccountCreated is true for signup flows: the account now exists and
	// a session should be issued.
	AccountCreated bool
	User           user.User
}

type Servicer interface {
	Issue(ctx context.Context, email string, signup *SignupPayload) (string, error)
	Verify(ctx context.Context, email, code string) (Result, error)
	Resend(ctx context.Context, email string) (string, error)
}

type Service struct {
	repo   Repository
	users  Directory
	sender Sender
	log    *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, users Directory, sender Sender, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		sender: sender,
		log:    log.With(slog.String("component", "otp_service")),
		now:    time.Now,
	}
}

// Issue starts a verification: any prior code for the email is superseded, a
// fresh 4-digit code is stored with a 5-minute deadline and mailed out.
// A signup payload switches the flow from password-reset to signup.
func (s *Service) Issue(ctx context.Context, email string, signup *SignupPayload) (string, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	p := PendingOTP{Email: email}

	if signup != nil {
		if err := user.ValidateSignup(signup.Username, email, signup.Password); err != nil {
			return "", err
		}
		_, err := s.users.FindByEmail(ctx, email)
		switch {
		case err == nil:
			return "", user.ErrDuplicateEmail
		case !errors.Is(err, user.ErrNotFound):
			return "", fmt.Errorf("check account: %w", err)
		}
		hash, err := user.HashPassword(signup.Password)
		if err != nil {
			return "", err
		}
		p.SignupUsername = strings.TrimSpace(signup.Username)
		p.SignupPasswordHash = hash
	} else {
		if _, err := s.users.FindByEmail(ctx, email); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return "", user.ErrNotFound
			}
			return "", fmt.Errorf("check account: %w", err)
		}
	}

	now := s.now()
	if err := s.repo.DeleteExpired(ctx, now); err != nil {
		s.log.Warn("failed to purge expired otps", "error", err)
	}
	// Supersession: a new code invalidates every earlier one for the email.
	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return "", fmt.Errorf("supersede otp: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}
	p.Code = code
	p.CreatedAt = now
	p.ExpiresAt = now.Add(TTL)

	if err := s.repo.Create(ctx, p); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}

	if err := s.sender.SendOTP(ctx, email, code, KindSignup); err != nil {
		return "", fmt.Errorf("send otp email: %w", err)
	}

	return code, nil
}

// Verify consumes a matching code. On a signup flow the account is created
// here, at the first and only point of email/password account creation.
func (s *Service) Verify(ctx context.Context, email, code string) (Result, error) {
	email = user.NormalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return Result{}, ErrInvalidInput
	}

	p, err := s.repo.FindValid(ctx, email, code, s.now())
	if err != nil {
		return Result{}, ErrInvalidOrExpired
	}

	if !p.HasSignupPayload() {
		// Reset flow: consume and report; the caller proceeds to the
		// password-reset operation.
		if err := s.repo.DeleteByEmail(ctx, email); err != nil {
			return Result{}, fmt.Errorf("consume otp: %w", err)
		}
		return Result{AccountCreated: false}, nil
	}

	u, err := s.users.Create(ctx, p.SignupUsername, email, p.SignupPasswordHash)
	if err != nil {
		return Result{}, err
	}

	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		s.log.Warn("failed to consume otp after signup", "email", email, "error", err)
	}

	return Result{AccountCreated: true, User: u}, nil
}

// Resend swaps the code on the existing record and mails it again. The
// original expiry clock keeps running; resending never extends the window.
func (s *Service) Resend(ctx context.Context, email string) (string, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	p, err := s.repo.FindByEmail(ctx, email, s.now())
	if err != nil {
		return "", ErrSessionTimedOut
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}
	if err := s.repo.UpdateCode(ctx, p.ID, code); err != nil {
		return "", fmt.Errorf("update otp code: %w", err)
	}

	if err := s.sender.SendOTP(ctx, email, code, KindResend); err != nil {
		return "", fmt.Errorf("send otp email: %w", err)
	}

	return code, nil
}

// generateCode draws a random 4-digit code in [1000, 9999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
