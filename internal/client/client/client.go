package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/mailtriage/internal/client/models"
)

// Client is the typed backend contract used by the services.
type Client interface {
	LoginUser(ctx context.Context, username, password string) (*LoginPayload, error)
	RegisterUser(ctx context.Context, username, email, password string) (*RegisterPayload, error)
	ClassifyEmail(ctx context.Context, sender, subject, body string) (*ClassifyPayload, error)
	AddFeedback(ctx context.Context, f models.FeedbackSubmission) (*FeedbackPayload, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Emails(ctx context.Context) ([]models.ScoredEmail, error)
	Email(ctx context.Context, id int64) (*models.ScoredEmail, error)
	Users(ctx context.Context) ([]models.User, error)
	Stats(ctx context.Context) (*models.Stats, error)
	UploadEmails(ctx context.Context, emails []json.RawMessage) (*models.UploadResult, error)
	Retrain(ctx context.Context) (*models.TaskResult, error)
}

// CredentialSource yields the current bearer credential, or "" when logged out.
type CredentialSource interface {
	Credential() string
}

// LoginPayload is the loginUser answer. Token is empty when the server
// refused the credentials; Message then says why.
type LoginPayload struct {
	Token   string           `json:"token"`
	User    *models.Identity `json:"user"`
	Message string           `json:"message"`
}

type RegisterPayload struct {
	User    *models.Identity `json:"user"`
	Message string           `json:"message"`
}

type ClassifyPayload struct {
	Email   *models.ScoredEmail `json:"email"`
	Message string              `json:"message"`
}

type FeedbackPayload struct {
	Feedback *models.Feedback `json:"feedback"`
	Message  string           `json:"message"`
}
