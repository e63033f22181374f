package services

import (
	"context"

	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/client/state"
	"github.com/dmitrijs2005/mailtriage/internal/logging"
)

// AdminService wraps the administrator-only backend operations. Non-admin
// callers are refused locally.
type AdminService struct {
	client client.Client
	state  *state.AppState
	logger logging.Logger
}

func NewAdminService(c client.Client, st *state.AppState, logger logging.Logger) *AdminService {
	return &AdminService{client: c, state: st, logger: logger}
}

func (s *AdminService) Users(ctx context.Context) ([]models.User, error) {
	if !s.state.IsAdmin() {
		return nil, ErrAccessDenied
	}
	return s.client.Users(ctx)
}

// Retrain asks the backend to retrain the classifier from feedback and
// returns its message.
func (s *AdminService) Retrain(ctx context.Context) (string, error) {
	if !s.state.IsAdmin() {
		return "", ErrAccessDenied
	}
	res, err := s.client.Retrain(ctx)
	if err != nil {
		return "", err
	}
	if !res.Success {
		return "", client.NewRejected("retrain", res.Message)
	}
	s.logger.Info(ctx, "retrain requested")
	return res.Message, nil
}
