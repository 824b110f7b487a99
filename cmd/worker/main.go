// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cricketacademy/academy-api/internal/auth"
	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/events"
	"github.com/cricketacademy/academy-api/internal/mail"
	"github.com/cricketacademy/academy-api/internal/notify"
)

const (
	cleanupInterval = time.Hour
	tokenRetention  = 24 * time.Hour
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("worker error", "error", err)
		os.Exit(1)
	}
}

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

	logger := newLogger(cfg.Log).With("process", "worker")
	slog.SetDefault(logger)

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // best effort on exit

	mailer, err := mail.New(cfg.SMTP, cfg.App.Name, logger)
	if err != nil {
		return err
	}
	notifier := notify.New(mailer, cfg.Razorpay.Currency, logger)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		cleanupTokens(ctx, auth.NewRepository(db.DB), logger)
	}()

	if cfg.RabbitMQ.URL == "" {
		logger.Warn("rabbitmq not configured, notifications disabled")
		wg.Wait()
		return nil
	}

	consumer, err := events.NewConsumer(cfg.RabbitMQ, events.AllKeys, logger)
	if err != nil {
		stop()
		wg.Wait()
		return err
	}
	defer consumer.Close() //nolint:errcheck // best effort on exit

	logger.Info("consuming events", "queue", cfg.RabbitMQ.Queue)
	runErr := consumer.Run(ctx, notifier)
	stop()
	wg.Wait()

	logger.Info("worker stopped")
	return runErr
}

type tokenPurger interface {
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

func cleanupTokens(ctx context.Context, tokens tokenPurger, logger *slog.Logger) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		n, err := tokens.DeleteExpired(ctx, tokenRetention)
		switch {
		case err != nil && ctx.Err() == nil:
			logger.Error("purge refresh tokens", "error", err)
		case n > 0:
			logger.Info("purged refresh tokens", "count", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
