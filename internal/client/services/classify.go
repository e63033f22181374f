package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/client/state"
	"github.com/dmitrijs2005/mailtriage/internal/logging"
)

// Severity buckets a confidence score for triage.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

const (
	highConfidence   = 0.80
	mediumConfidence = 0.60
)

// SeverityFor maps confidence to a tier: >= 0.80 high, >= 0.60 medium,
// anything lower low.
func SeverityFor(confidence float64) Severity {
	switch {
	case confidence >= highConfidence:
		return SeverityHigh
	case confidence >= mediumConfidence:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Classification is a scored email with its presentation attributes.
type Classification struct {
	Email    models.ScoredEmail
	Severity Severity
	Color    string
	Message  string
}

type ClassifyService struct {
	client  client.Client
	catalog *Catalog
	state   *state.AppState
	logger  logging.Logger
}

func NewClassifyService(c client.Client, catalog *Catalog, st *state.AppState, logger logging.Logger) *ClassifyService {
	return &ClassifyService{client: c, catalog: catalog, state: st, logger: logger}
}

// Classify scores one message and makes it the current scored email.
func (s *ClassifyService) Classify(ctx context.Context, sender, subject, body string) (*Classification, error) {
	if strings.TrimSpace(sender) == "" || strings.TrimSpace(subject) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrMessageFieldsRequired
	}

	payload, err := s.client.ClassifyEmail(ctx, sender, subject, body)
	if err != nil {
		return nil, err
	}
	if payload.Email == nil {
		return nil, client.NewRejected("classifyEmail", payload.Message)
	}
	email := *payload.Email
	if math.IsNaN(email.ConfidenceScore) || email.ConfidenceScore < 0 || email.ConfidenceScore > 1 {
		return nil, client.NewMalformed("classifyEmail",
			fmt.Errorf("confidence %v outside [0,1]", email.ConfidenceScore))
	}

	s.state.SetCurrentEmail(email.ID)

	if _, err := s.catalog.Ensure(ctx); err != nil {
		s.logger.Warn(ctx, "category cache unavailable, using neutral color", logging.KeyError, err)
	}

	s.logger.Debug(ctx, "email classified", "email_id", email.ID,
		"category", email.CategoryName, "confidence", email.ConfidenceScore)

	return &Classification{
		Email:    email,
		Severity: SeverityFor(email.ConfidenceScore),
		Color:    s.catalog.ColorFor(email.CategoryID),
		Message:  payload.Message,
	}, nil
}

// SubmitFeedback sends a category correction for the current scored email.
// The current email is kept afterwards, so it can be corrected again.
func (s *ClassifyService) SubmitFeedback(ctx context.Context, correctedCategoryID, feedbackText string) error {
	emailID, ok := s.state.CurrentEmail()
	if !ok {
		return ErrNoActiveEmail
	}
	raw := strings.TrimSpace(correctedCategoryID)
	if raw == "" {
		return ErrMissingCategory
	}
	categoryID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ErrInvalidCategory
	}

	payload, err := s.client.AddFeedback(ctx, models.FeedbackSubmission{
		EmailID:             emailID,
		CorrectedCategoryID: categoryID,
		FeedbackText:        strings.TrimSpace(feedbackText),
	})
	if err != nil {
		return err
	}
	if payload.Feedback == nil {
		return client.NewRejected("addFeedback", payload.Message)
	}

	s.logger.Debug(ctx, "feedback recorded", "email_id", emailID, "category_id", categoryID)
	return nil
}
