// Personal vault HTTP API.
//
// POST   /api/auth/signup          # Start signup, mails an OTP (guest)
// POST   /api/auth/otp/verify      # Verify OTP, create account or unlock reset (guest)
// POST   /api/auth/otp/resend      # Resend OTP (guest)
// POST   /api/auth/login           # Log in (guest)
// POST   /api/auth/logout          # Log out (auth)
// POST   /api/auth/forgot-password # Start password reset (guest)
// POST   /api/auth/reset-password  # Set new password (guest)
// GET    /api/auth/me              # Current account (auth)
// PUT    /api/auth/profile         # Update profile (auth)
// PUT    /api/auth/avatar          # Replace avatar (auth)
// DELETE /api/auth/account         # Delete account (auth)
// GET    /api/documents            # List documents (auth)
// POST   /api/documents            # Create document (auth)
// GET    /api/documents/{id}       # Fetch document (auth)
// PUT    /api/documents/{id}       # Update document (auth)
// DELETE /api/documents/{id}       # Delete document (auth)
// GET    /api/notifications        # List notifications (auth)
// POST   /api/notifications/read   # Mark all read (auth)
// GET    /health                   # Health check (public)

package api

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authAPI "securenest/internal/app/server/api/http/auth"
	documentAPI "securenest/internal/app/server/api/http/document"
	healthAPI "securenest/internal/app/server/api/http/health"
	"securenest/internal/app/server/api/http/middleware"
	"securenest/internal/app/server/api/http/middleware/auth"
	"securenest/internal/app/server/api/http/middleware/logger"
	notificationAPI "securenest/internal/app/server/api/http/notification"
	"securenest/internal/app/server/config"
	"securenest/internal/app/server/crypto"
	"securenest/internal/domain/document"
	"securenest/internal/domain/notification"
	"securenest/internal/domain/otp"
	"securenest/internal/domain/session"
	"securenest/internal/domain/user"
	"securenest/internal/infrastructure/mail"
	"securenest/internal/infrastructure/storage/minio"
	"securenest/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health       *healthAPI.Handler
	Auth         *authAPI.Handler
	Document     *documentAPI.Handler
	Notification *notificationAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(cfg *config.Config, storage *postgres.Storage, assets *minio.Store, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("SecureNest API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookie": {Type: "apiKey", In: "cookie", Name: session.CookieName},
	}

	API := humachi.New(mux, humaConfig)

	h, err := handlers(cfg, storage, assets, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Document.SetupRoutes(API)
	h.Notification.SetupRoutes(API)

	return mux, nil
}

func handlers(cfg *config.Config, storage *postgres.Storage, assets *minio.Store, log *slog.Logger) (*Handlers, error) {
	pool := storage.Pool()

	cipher, err := crypto.NewFieldCipher(cfg.Cipher.KeyHex, cfg.Cipher.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("init field cipher: %w", err)
	}

	sessionService := session.NewService(cfg.Auth.Secret, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	notificationRepo := postgres.NewNotificationRepository(pool, log)
	notificationService := notification.NewService(notificationRepo, log)

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, assets, notificationService, log)

	otpRepo := postgres.NewOTPRepository(pool, log)
	sender := mail.New(cfg, log)
	otpService := otp.NewService(otpRepo, userService, sender, log)

	documentRepo := postgres.NewDocumentRepository(pool, log)
	documentService := document.NewService(documentRepo, assets, cipher, notificationService, log)

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.GuestOnly())
	guestMWs := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	authMWs := middlewares.GetAllAndClear()
	authHandler := authAPI.NewHandler(userService, otpService, sessionService,
		notificationService, log, guestMWs, authMWs)

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	documentHandler := documentAPI.NewHandler(documentService, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	notificationHandler := notificationAPI.NewHandler(notificationService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:       healthHandler,
		Auth:         authHandler,
		Document:     documentHandler,
		Notification: notificationHandler,
	}, nil
}
