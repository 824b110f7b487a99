// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cricketacademy/academy-api/internal/admin"
	"github.com/cricketacademy/academy-api/internal/auth"
	"github.com/cricketacademy/academy-api/internal/booking"
	"github.com/cricketacademy/academy-api/internal/career"
	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/contact"
	"github.com/cricketacademy/academy-api/internal/content"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/events"
	"github.com/cricketacademy/academy-api/internal/ground"
	"github.com/cricketacademy/academy-api/internal/health"
	"github.com/cricketacademy/academy-api/internal/mail"
	"github.com/cricketacademy/academy-api/internal/middleware"
	"github.com/cricketacademy/academy-api/internal/migrations"
	"github.com/cricketacademy/academy-api/internal/payment"
	"github.com/cricketacademy/academy-api/internal/pricing"
	"github.com/cricketacademy/academy-api/internal/program"
	"github.com/cricketacademy/academy-api/internal/server"
	"github.com/cricketacademy/academy-api/internal/team"
	"github.com/cricketacademy/academy-api/internal/upload"
	"github.com/cricketacademy/academy-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		applied, migErr := db.Migrate(ctx, migrations.FS)
		if migErr != nil {
			return migErr
		}
		logger.Info("migrations applied", "count", applied)
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	if cfg.IsDevelopment() {
		if keyErr := ensureDevKeys(cfg.JWT, logger); keyErr != nil {
			return keyErr
		}
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.KeyID(),
	)

	mailer, err := mail.New(cfg.SMTP, cfg.App.Name, logger)
	if err != nil {
		return err
	}

	var (
		publisher  events.Publisher = events.LogPublisher{Logger: logger}
		brokerPing func(context.Context) error
		healthDeps = []health.Dependency{
			{Name: "database", Checker: db},
			{Name: "redis", Checker: redis},
		}
	)
	var amqpPublisher *events.AMQPPublisher
	if cfg.RabbitMQ.URL != "" {
		amqpPublisher, err = events.NewAMQPPublisher(cfg.RabbitMQ)
		if err != nil {
			return err
		}
		publisher = amqpPublisher
		brokerPing = amqpPublisher.Ping
		healthDeps = append(healthDeps, health.Dependency{Name: "rabbitmq", Checker: amqpPublisher})
		logger.Info("rabbitmq connected", "exchange", cfg.RabbitMQ.Exchange)
	}

	var gateway payment.Gateway
	if rz, rzErr := payment.NewRazorpay(cfg.Razorpay); rzErr != nil {
		logger.Warn("payment gateway disabled", "error", rzErr)
	} else {
		gateway = rz
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(auth.Deps{
		Tokens:        auth.NewRepository(db.DB),
		Activity:      auth.NewActivityRepository(db.DB),
		Resets:        auth.NewResetTokenRepository(db.DB),
		Verifications: auth.NewVerificationRepository(db.DB),
		JWT:           jwtManager,
		Users:         userSvc,
		Store:         auth.NewRedisStore(redis.Client),
		Mailer:        mailer,
		Config:        cfg.Auth,
		Logger:        logger,
	})
	authHandler := auth.NewHandler(authSvc)

	groundSvc := ground.NewService(ground.NewRepository(db.DB), logger)
	groundHandler := ground.NewHandler(groundSvc)

	paymentRepo := payment.NewRepository(db.DB)
	refunder := payment.NewRefunder(gateway, paymentRepo, logger)

	bookingSvc := booking.NewService(
		booking.NewRepository(db.DB),
		groundSvc,
		refunder,
		publisher,
		cfg.Booking,
		logger.With("component", "booking"),
	)
	bookingHandler := booking.NewHandler(bookingSvc)

	paymentSvc := payment.NewService(payment.Deps{
		Gateway:   gateway,
		Repo:      paymentRepo,
		Settings:  payment.NewRedisSettings(redis.Client, cfg.Payment, cfg.Razorpay.Currency),
		Bookings:  bookingSvc,
		Refunder:  refunder,
		Publisher: publisher,
		Currency:  cfg.Razorpay.Currency,
		Logger:    logger,
	})
	paymentHandler := payment.NewHandler(paymentSvc)

	programSvc := program.NewService(program.NewRepository(db.DB), logger)
	if seeded, seedErr := programSvc.SeedSuggested(ctx); seedErr != nil {
		logger.Warn("seed suggested programs", "error", seedErr)
	} else if seeded > 0 {
		logger.Info("suggested programs seeded", "count", seeded)
	}
	programHandler := program.NewHandler(programSvc)

	teamHandler := team.NewHandler(team.NewService(team.NewRepository(db.DB), logger))
	pricingHandler := pricing.NewHandler(pricing.NewService(pricing.NewRepository(db.DB), logger))
	careerHandler := career.NewHandler(career.NewService(career.NewRepository(db.DB), logger))
	contactHandler := contact.NewHandler(contact.NewService(contact.NewRepository(db.DB), logger))
	contentHandler := content.NewHandler(content.NewService(
		content.NewRepository(db.DB),
		content.NewRedisCache(redis.Client),
		logger,
	))

	store, err := upload.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		return err
	}
	uploadHandler := upload.NewHandler(upload.NewService(
		store,
		upload.NewFetcher(cfg.Upload),
		cfg.Upload.MaxSizeBytes,
		logger,
	))

	healthHandler := health.NewHandler(healthDeps...)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Users:      userSvc,
		Bookings:   bookingSvc,
		Sessions:   authSvc,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		BrokerPing: brokerPing,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer(logger))
	if telemetry != nil {
		router.Use(middleware.Tracing(cfg.Otel.ServiceName))
	}
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	strict := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Limit: middleware.PerMinute(
			cfg.RateLimit.AuthRequests,
			cfg.RateLimit.AuthBurst,
		),
		KeyFunc:  middleware.KeyByIPAndEndpoint,
		FailOpen: true,
	}).Handler

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.JWKSHandler())
	router.Handle(upload.PublicPrefix+"*", upload.FileServer(store))

	authenticator := middleware.Authenticator(jwtManager)
	optionalAuth := middleware.OptionalAuth(jwtManager)

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator, strict)
		userHandler.RegisterRoutes(r, authenticator)
		groundHandler.RegisterRoutes(r)
		bookingHandler.RegisterRoutes(r, authenticator, optionalAuth)
		paymentHandler.RegisterRoutes(r, authenticator, optionalAuth)
		programHandler.RegisterRoutes(r)
		teamHandler.RegisterRoutes(r, authenticator)
		pricingHandler.RegisterRoutes(r)
		careerHandler.RegisterRoutes(r)
		contentHandler.RegisterRoutes(r)
		contactHandler.RegisterRoutes(r, authenticator)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.RequireAdmin)

			userHandler.RegisterAdminRoutes(r)
			groundHandler.RegisterAdminRoutes(r)
			bookingHandler.RegisterAdminRoutes(r)
			paymentHandler.RegisterAdminRoutes(r)
			programHandler.RegisterAdminRoutes(r)
			pricingHandler.RegisterAdminRoutes(r)
			careerHandler.RegisterAdminRoutes(r)
			contentHandler.RegisterAdminRoutes(r)
			adminHandler.RegisterAdminRoutes(r)
			r.With(strict).Group(uploadHandler.RegisterAdminRoutes)
		})
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if amqpPublisher != nil {
		if err := amqpPublisher.Close(); err != nil {
			logger.Error("rabbitmq close error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// ensureDevKeys writes a fresh ES256 key pair when none exists yet.
func ensureDevKeys(cfg config.JWTConfig, logger *slog.Logger) error {
	if _, err := os.Stat(cfg.PrivateKeyPath); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat private key: %w", err)
	}

	for _, p := range []string{cfg.PrivateKeyPath, cfg.PublicKeyPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
			return fmt.Errorf("create key dir: %w", err)
		}
	}
	if err := auth.GenerateKeyPair(cfg.PrivateKeyPath, cfg.PublicKeyPath); err != nil {
		return err
	}
	logger.Warn("generated development signing keys", "path", cfg.PrivateKeyPath)
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
