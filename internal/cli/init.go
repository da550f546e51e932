// Package cli provides common CLI initialization utilities shared by the
// daybook subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"daybook/internal/backend"
	"daybook/internal/config"
	"daybook/internal/log"
)

// SetupLogger initializes structured logging at the given level, writing to w.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(level string, w io.Writer) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ParseLevel(level)
	if w != nil {
		cfg.Output = w
	}
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// ValidateConfig validates cfg and logs the failure, if any.
func ValidateConfig(logger *log.Logger, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed",
			log.NewFields().WithOperation(log.OpStartup).WithError(err, log.ErrorTypeConfiguration).ToSlice()...)
		return err
	}
	return nil
}

// InitBackend builds the configured backend.
func InitBackend(ctx context.Context, logger *log.Logger, cfg *config.Config) (*backend.BackendResult, error) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize backend",
			log.NewFields().WithOperation(log.OpStartup).WithError(err, log.ErrorTypeStorage).ToSlice()...)
		return nil, fmt.Errorf("initialize %s backend: %w", cfg.DataBackend, err)
	}
	return result, nil
}

// Bootstrap runs the startup sequence every command shares: .env, config,
// logger, backend. The caller must Close the returned backend.
func Bootstrap(ctx context.Context, stderr io.Writer) (*config.Config, *log.Logger, *backend.BackendResult, error) {
	LoadEnvFile()

	cfg := config.Load()
	logger := SetupLogger(cfg.LogLevel, stderr)
	if err := ValidateConfig(logger, cfg); err != nil {
		return nil, nil, nil, err
	}

	result, err := InitBackend(ctx, logger, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, result, nil
}

// GracefulShutdown returns a context that is cancelled on SIGINT or SIGTERM,
// and a stop function that releases the signal handler.
func GracefulShutdown(parent context.Context, logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", log.FieldOperation, log.OpShutdown, "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
