package menu

import (
	"context"
	"errors"

	"daybook/internal/core"
)

// login returns the username on success and "" when the credentials are
// rejected.
func (m *Menu) login(ctx context.Context) (string, error) {
	username, err := m.prompt.Ask(ctx, promptLoginUser)
	if err != nil {
		return "", err
	}
	password, err := m.prompt.Ask(ctx, promptLoginPassword)
	if err != nil {
		return "", err
	}

	name, err := m.svc.Accounts.Login(ctx, username, password)
	switch {
	case err == nil:
		m.prompt.Println(msgLoginOK)
		return name, nil
	case errors.Is(err, core.ErrInvalidCredentials):
		m.prompt.Println(msgLoginFailed)
	case isQuit(err):
		return "", err
	default:
		m.report(err, msgNotLoaded)
	}
	return "", nil
}

func (m *Menu) register(ctx context.Context) error {
	username, err := m.prompt.Ask(ctx, promptNewUser)
	if err != nil {
		return err
	}

	taken, err := m.svc.Accounts.Exists(ctx, username)
	if err != nil {
		m.report(err, msgNotLoaded)
		return nil
	}
	if taken {
		m.prompt.Println(msgUserExists)
		return nil
	}
	if err := core.ValidateUsername(username); err != nil {
		m.prompt.Println(msgInvalidUsername)
		return nil
	}

	password, err := m.prompt.Ask(ctx, promptNewPassword)
	if err != nil {
		return err
	}

	_, err = m.svc.Accounts.Register(ctx, username, password)
	switch {
	case err == nil:
		m.prompt.Println(msgUserRegistered)
	case errors.Is(err, core.ErrAlreadyExists):
		m.prompt.Println(msgUserExists)
	case errors.Is(err, core.ErrInvalidUsername):
		m.prompt.Println(msgInvalidUsername)
	case errors.Is(err, core.ErrInvalidPassword):
		m.prompt.Println(msgInvalidPassword)
	default:
		m.report(err, msgNotSaved)
	}
	return nil
}
