package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	// Backend selection
	DataBackend string

	// Flat files
	DataDir      string
	UsersFile    string
	TasksFile    string
	ExpensesFile string

	// Database
	SQLiteDBPath string

	// Security
	BcryptCost             int
	LoginAttemptsPerMinute int // 0 disables throttling
	LoginBurst             int

	// Presentation
	Currency string
	LogLevel string
}

// Backends lists the accepted DATA_BACKEND values.
var Backends = []string{"file", "sqlite", "memory"}

func Load() *Config {
	cfg := &Config{
		DataBackend: getEnv("DATA_BACKEND", "file"),

		DataDir:      getEnv("DATA_DIR", "."),
		UsersFile:    getEnv("USERS_FILE", "users.txt"),
		TasksFile:    getEnv("TASKS_FILE", "tasks.json"),
		ExpensesFile: getEnv("EXPENSES_FILE", "expenses.csv"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/daybook.db"),

		BcryptCost:             getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		LoginAttemptsPerMinute: getEnvInt("LOGIN_ATTEMPTS_PER_MINUTE", 10),
		LoginBurst:             getEnvInt("LOGIN_BURST", 3),

		Currency: strings.ToUpper(getEnv("CURRENCY", money.USD)),
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}

	return cfg
}

// UsersPath returns the credential ledger path, resolved against DataDir.
func (c *Config) UsersPath() string { return c.resolve(c.UsersFile) }

// TasksPath returns the task document path, resolved against DataDir.
func (c *Config) TasksPath() string { return c.resolve(c.TasksFile) }

// ExpensesPath returns the expense ledger path, resolved against DataDir.
func (c *Config) ExpensesPath() string { return c.resolve(c.ExpensesFile) }

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	if !slices.Contains(Backends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, Backends))
	}

	if c.DataBackend == "file" {
		if c.UsersFile == "" || c.TasksFile == "" || c.ExpensesFile == "" {
			errors = append(errors, "users, tasks and expenses file names cannot be empty when using file backend")
		}
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty when using file backend")
		} else if info, err := os.Stat(c.DataDir); err == nil && !info.IsDir() {
			errors = append(errors, fmt.Sprintf("data directory '%s' is not a directory", c.DataDir))
		}
	}

	// Validate SQLite configuration if backend is sqlite
	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errors = append(errors, fmt.Sprintf("invalid bcrypt cost %d: must be between %d and %d", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if c.LoginAttemptsPerMinute < 0 {
		errors = append(errors, fmt.Sprintf("invalid login attempts per minute %d: must not be negative", c.LoginAttemptsPerMinute))
	}
	if c.LoginAttemptsPerMinute > 0 && c.LoginBurst < 1 {
		errors = append(errors, fmt.Sprintf("invalid login burst %d: must be at least 1 when throttling is enabled", c.LoginBurst))
	}

	if money.GetCurrency(c.Currency) == nil {
		errors = append(errors, fmt.Sprintf("unknown currency '%s'", c.Currency))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
