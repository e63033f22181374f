package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mailtriage/internal/client/state"
	"github.com/dmitrijs2005/mailtriage/internal/common"
	"github.com/dmitrijs2005/mailtriage/internal/logging"
)

// AuthService owns the session.
//
// Contract:
//   - Login: authenticate, then hold and persist credential plus identity.
//   - Register: create the account, then Login with the same credentials.
//   - Logout: forget the session in memory and in storage; idempotent.
//   - Restore: reload a persisted session at startup, repairing bad state.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Identity, error)
	Register(ctx context.Context, username, email, password string) (string, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.Identity, bool)
}

type authService struct {
	client client.Client
	repo   metadata.Repository
	state  *state.AppState
	logger logging.Logger
	now    func() time.Time
}

// NewAuthService constructs an AuthService persisting into repo and keeping
// the live session in st.
func NewAuthService(c client.Client, repo metadata.Repository, st *state.AppState, logger logging.Logger) AuthService {
	return &authService{client: c, repo: repo, state: st, logger: logger, now: time.Now}
}

// Login validates the form, calls the login mutation and, when the server
// hands out a credential, persists and installs the session. A reply without
// a credential is an *AuthError carrying the server's message.
func (a *authService) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	if err := ValidateLogin(username, password); err != nil {
		return nil, err
	}

	payload, err := a.client.LoginUser(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if payload.Token == "" {
		a.logger.Info(ctx, "login refused", logging.KeyUser, username)
		return nil, &AuthError{Message: payload.Message}
	}
	if payload.User == nil {
		return nil, client.NewMalformed("loginUser", errors.New("credential issued without an identity"))
	}

	if err := a.persist(ctx, payload.Token, *payload.User); err != nil {
		return nil, err
	}
	if err := a.state.SetSession(payload.Token, *payload.User); err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "logged in", logging.KeyUser, payload.User.Username,
		"admin", payload.User.IsAdmin, "token", logging.SanitizeToken(payload.Token))

	identity := *payload.User
	return &identity, nil
}

// Register creates the account and then logs in with the same credentials.
// The login runs only after registration succeeded, and its failure replaces
// the registration outcome.
func (a *authService) Register(ctx context.Context, username, email, password string) (string, error) {
	if err := ValidateRegistration(username, email, password); err != nil {
		return "", err
	}

	payload, err := a.client.RegisterUser(ctx, username, email, password)
	if err != nil {
		return "", err
	}
	if payload.User == nil {
		return "", &AuthError{Message: payload.Message}
	}
	a.logger.Info(ctx, "registered", logging.KeyUser, username)

	if _, err := a.Login(ctx, username, password); err != nil {
		return "", err
	}
	return payload.Message, nil
}

// Logout clears the in-memory session first, so a storage failure can never
// leave the process authenticated.
func (a *authService) Logout(ctx context.Context) error {
	// Also drops the category cache: it belongs to the session that loaded it.
	a.state.ClearSession()
	if err := a.repo.DeleteMany(ctx, common.MetadataKeyToken, common.MetadataKeyIdentity); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}

// Restore reads the persisted session. Half-present, undecodable or expired
// state is wiped through Logout and reported as no session.
func (a *authService) Restore(ctx context.Context) (*models.Identity, bool) {
	token, err := a.repo.Get(ctx, common.MetadataKeyToken)
	if err != nil {
		a.logger.Warn(ctx, "reading persisted credential failed", logging.KeyError, err)
		return nil, false
	}
	blob, err := a.repo.Get(ctx, common.MetadataKeyIdentity)
	if err != nil {
		a.logger.Warn(ctx, "reading persisted identity failed", logging.KeyError, err)
		return nil, false
	}

	if len(token) == 0 && len(blob) == 0 {
		return nil, false
	}
	if len(token) == 0 || len(blob) == 0 {
		a.discard(ctx, "partial session state")
		return nil, false
	}

	var identity *models.Identity
	if err := json.Unmarshal(blob, &identity); err != nil || identity == nil {
		a.discard(ctx, "identity blob does not decode")
		return nil, false
	}

	if exp, ok := CredentialExpiry(string(token)); ok && !exp.After(a.now()) {
		a.logger.Info(ctx, "persisted credential expired", "expired_at", exp)
		_ = a.logoutQuietly(ctx)
		return nil, false
	}

	if err := a.state.SetSession(string(token), *identity); err != nil {
		a.discard(ctx, err.Error())
		return nil, false
	}
	a.logger.Info(ctx, "session restored", logging.KeyUser, identity.Username)
	return identity, true
}

func (a *authService) persist(ctx context.Context, token string, identity models.Identity) error {
	blob, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	err = a.repo.SetMany(ctx, map[string][]byte{
		common.MetadataKeyToken:    []byte(token),
		common.MetadataKeyIdentity: blob,
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (a *authService) discard(ctx context.Context, reason string) {
	a.logger.Warn(ctx, "discarding persisted session", logging.KeyError, ErrSessionCorrupt, "reason", reason)
	_ = a.logoutQuietly(ctx)
}

func (a *authService) logoutQuietly(ctx context.Context) error {
	err := a.Logout(ctx)
	if err != nil {
		a.logger.Error(ctx, "logout failed", logging.KeyError, err)
	}
	return err
}
