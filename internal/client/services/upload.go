package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/logging"
)

// GenericUploadFailure replaces the server's text when it reports an
// unsuccessful batch; the contract carries no per-item detail.
const GenericUploadFailure = "the server could not process the batch"

type UploadService struct {
	client client.Client
	logger logging.Logger
}

func NewUploadService(c client.Client, logger logging.Logger) *UploadService {
	return &UploadService{client: c, logger: logger}
}

// SubmitBatch parses raw as {"emails": [ {...}, ... ]} and submits the list.
// Parse and shape failures are returned before any call is made. A batch the
// server declines is not an error: the report says Success=false.
func (s *UploadService) SubmitBatch(ctx context.Context, raw string) (*models.UploadReport, error) {
	emails, err := parseBatch([]byte(raw))
	if err != nil {
		return nil, err
	}

	res, err := s.client.UploadEmails(ctx, emails)
	if err != nil {
		return nil, err
	}

	if !res.Success {
		s.logger.Warn(ctx, "batch upload declined", "submitted", len(emails), "server_message", res.Message)
		return &models.UploadReport{Success: false, Message: GenericUploadFailure}, nil
	}

	s.logger.Info(ctx, "batch uploaded", "submitted", len(emails), "produced", len(res.Emails))
	return &models.UploadReport{
		Success: true,
		Message: res.Message,
		Count:   len(res.Emails),
		Emails:  res.Emails,
	}, nil
}

func parseBatch(raw []byte) ([]json.RawMessage, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, err.Error())
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil || top == nil {
		return nil, ErrInvalidShape
	}
	list, ok := top["emails"]
	if !ok || bytes.Equal(bytes.TrimSpace(list), []byte("null")) {
		return nil, ErrInvalidShape
	}

	var emails []json.RawMessage
	if err := json.Unmarshal(list, &emails); err != nil {
		return nil, ErrInvalidShape
	}
	for _, e := range emails {
		if t := bytes.TrimSpace(e); len(t) == 0 || t[0] != '{' {
			return nil, ErrInvalidShape
		}
	}
	return emails, nil
}
