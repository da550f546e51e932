package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"daybook/internal/config"
)

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger("info", &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("info message missing: %q", out)
	}
}

func TestValidateConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger("warn", &buf)

	cfg := &config.Config{DataBackend: "nope"}
	if err := ValidateConfig(logger, cfg); err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(buf.String(), "Configuration validation failed") {
		t.Errorf("validation failure should be logged, got %q", buf.String())
	}
}

func TestBootstrap(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_BACKEND", "file")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("LOG_LEVEL", "error")

	var stderr bytes.Buffer
	cfg, logger, result, err := Bootstrap(context.Background(), &stderr)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	defer result.Close()

	if logger == nil || result.Backend == nil {
		t.Fatal("expected logger and backend")
	}
	if cfg.UsersPath() != filepath.Join(dir, "users.txt") {
		t.Errorf("UsersPath = %s", cfg.UsersPath())
	}
	if _, err := result.Backend.Tasks().List(context.Background(), "nobody"); err != nil {
		t.Errorf("List on fresh backend: %v", err)
	}
}

func TestBootstrapInvalidConfig(t *testing.T) {
	t.Setenv("DATA_BACKEND", "sheets")

	var stderr bytes.Buffer
	if _, _, _, err := Bootstrap(context.Background(), &stderr); err == nil {
		t.Fatal("expected error for invalid backend")
	}
}

func TestGracefulShutdownStop(t *testing.T) {
	ctx, stop := GracefulShutdown(context.Background(), SetupLogger("error", &bytes.Buffer{}))
	stop()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("stop should cancel the context")
	}
}
