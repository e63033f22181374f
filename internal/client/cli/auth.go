package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mailtriage/internal/client/busy"
	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/notify"
	"github.com/dmitrijs2005/mailtriage/internal/logging"
)

// getSimpleText, getMultiline and getPassword are swapped out in tests.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Login prompts for credentials and, on success, lands on the dashboard.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	return a.withGate(ctx, "login", func() error {
		id, err := a.auth.Login(ctx, username, string(password))
		if err != nil {
			return err
		}
		notify.Success(a.queue, "Welcome, "+id.Username)
		a.enterHome(ctx)
		return nil
	})
}

// Register creates the account, which also logs in, and lands on the
// dashboard.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	return a.withGate(ctx, "register", func() error {
		msg, err := a.auth.Register(ctx, username, email, string(password))
		if err != nil {
			return err
		}
		if msg == "" {
			msg = "Registration successful"
		}
		notify.Success(a.queue, msg)
		a.enterHome(ctx)
		return nil
	})
}

// Logout always drops back to the logged-out surface, even when clearing
// the store fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	a.controller.Reset()
	a.feedback.Clear()
	if err != nil {
		return a.fail(ctx, err)
	}
	notify.Info(a.queue, "Logged out")
	return nil
}

// withGate disables the named control while fn runs and reports fn's error.
func (a *App) withGate(ctx context.Context, name string, fn func() error) error {
	if err := a.gates.Run(name, fn); err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

// fail notifies err in user terms and returns it unchanged.
func (a *App) fail(ctx context.Context, err error) error {
	a.logger.Warn(ctx, "command failed", logging.KeyError, err)
	notify.Error(a.queue, userMessage(err))
	return err
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, busy.ErrBusy):
		return "Please wait for the previous request to finish"
	case errors.Is(err, client.ErrUnreachable):
		return "Cannot reach the server, please try again"
	case errors.Is(err, client.ErrMalformedResponse):
		return "The server sent an unexpected response"
	}
	return err.Error()
}
