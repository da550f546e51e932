package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"daybook/internal/core"
	"daybook/internal/ledger"
	"daybook/internal/log"
)

// AccountService registers and authenticates users against a credential store.
type AccountService struct {
	store   ledger.CredentialStore
	logger  *log.Logger
	limiter *rate.Limiter
}

// AccountOption configures an AccountService.
type AccountOption func(*AccountService)

// WithLoginLimiter throttles login attempts: each attempt waits for a token
// from l before the password is checked.
func WithLoginLimiter(l *rate.Limiter) AccountOption {
	return func(s *AccountService) { s.limiter = l }
}

func NewAccountService(store ledger.CredentialStore, logger *log.Logger, opts ...AccountOption) *AccountService {
	if logger == nil {
		logger = log.Discard()
	}
	s := &AccountService{
		store:  store,
		logger: logger.WithComponent(log.ComponentAuth),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exists reports whether username is taken. The menu asks before prompting
// for a password.
func (s *AccountService) Exists(ctx context.Context, username string) (bool, error) {
	ok, err := s.store.Exists(ctx, username)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to look up username",
			log.NewFields().WithOperation(log.OpRegister).WithUsername(username).
				WithError(err, log.ErrorTypeStorage).ToSlice()...)
		return false, fmt.Errorf("lookup user: %w", err)
	}
	return ok, nil
}

// Register stores a new user and returns the username.
func (s *AccountService) Register(ctx context.Context, username, password string) (string, error) {
	if err := core.ValidateUsername(username); err != nil {
		s.logger.WarnContext(ctx, "Rejected username",
			log.NewFields().WithOperation(log.OpRegister).WithError(err, log.ErrorTypeValidation).ToSlice()...)
		return "", err
	}

	name, err := s.store.Register(ctx, username, password)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrAlreadyExists):
		s.logger.WarnContext(ctx, "Username already registered",
			log.NewFields().WithOperation(log.OpRegister).WithUsername(username).ToSlice()...)
		return "", err
	case errors.Is(err, core.ErrInvalidPassword):
		s.logger.WarnContext(ctx, "Rejected password",
			log.NewFields().WithOperation(log.OpRegister).WithUsername(username).
				WithError(err, log.ErrorTypeValidation).ToSlice()...)
		return "", err
	default:
		s.logger.ErrorContext(ctx, "Failed to register user",
			log.NewFields().WithOperation(log.OpRegister).WithUsername(username).
				WithError(err, log.ErrorTypeStorage).ToSlice()...)
		return "", fmt.Errorf("register user: %w", err)
	}

	s.logger.InfoContext(ctx, "User registered",
		log.NewFields().WithOperation(log.OpRegister).WithUsername(name).ToSlice()...)
	return name, nil
}

// Login returns the username when the password verifies. Unknown users and
// wrong passwords both yield core.ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.WarnContext(ctx, "Login throttled",
				log.NewFields().WithOperation(log.OpLogin).WithUsername(username).
					WithError(err, log.ErrorTypeAuth).ToSlice()...)
			return "", fmt.Errorf("login: %w", err)
		}
	}

	name, err := s.store.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			s.logger.WarnContext(ctx, "Login failed",
				log.NewFields().WithOperation(log.OpLogin).WithUsername(username).
					WithError(err, log.ErrorTypeAuth).ToSlice()...)
			return "", err
		}
		s.logger.ErrorContext(ctx, "Failed to read credentials",
			log.NewFields().WithOperation(log.OpLogin).WithError(err, log.ErrorTypeStorage).ToSlice()...)
		return "", fmt.Errorf("login: %w", err)
	}

	s.logger.InfoContext(ctx, "User logged in",
		log.NewFields().WithOperation(log.OpLogin).WithUsername(name).ToSlice()...)
	return name, nil
}
