package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/mailtriage/internal/client/models"
)

const (
	mutationLogin = `mutation LoginUser($username: String!, $password: String!) {
  loginUser(username: $username, password: $password) {
    authPayload { token message user { id username email isAdmin } }
  }
}`

	mutationRegister = `mutation RegisterUser($username: String!, $email: String!, $password: String!) {
  registerUser(username: $username, email: $email, password: $password) {
    message user { id username email isAdmin }
  }
}`

	mutationClassify = `mutation ClassifyEmail($sender: String!, $subject: String!, $body: String!) {
  classifyEmail(sender: $sender, subject: $subject, body: $body) {
    message
    email { id sender subject body categoryId categoryName confidenceScore suggestedResponse createdAt }
  }
}`

	mutationFeedback = `mutation AddFeedback($emailId: Int!, $correctedCategoryId: Int!, $feedbackText: String) {
  addFeedback(emailId: $emailId, correctedCategoryId: $correctedCategoryId, feedbackText: $feedbackText) {
    message feedback { id }
  }
}`

	queryCategories = `query { categories { id name description color } }`

	queryEmails = `query { emails { id sender subject body categoryId categoryName confidenceScore createdAt } }`

	queryEmail = `query Email($id: Int!) {
  email(id: $id) { id sender subject body categoryId categoryName confidenceScore suggestedResponse createdAt }
}`

	queryUsers = `query { users { id username email isAdmin createdAt } }`
)

// Task endpoint paths, relative to Endpoints.TaskPrefix.
const (
	PathStats   = "/stats"
	PathUpload  = "/upload_emails"
	PathRetrain = "/retrain"
)

func (c *HTTPClient) LoginUser(ctx context.Context, username, password string) (*LoginPayload, error) {
	var out struct {
		LoginUser struct {
			AuthPayload *LoginPayload `json:"authPayload"`
		} `json:"loginUser"`
	}
	vars := map[string]any{"username": username, "password": password}
	if err := c.Query(ctx, "loginUser", mutationLogin, vars, &out); err != nil {
		return nil, err
	}
	if out.LoginUser.AuthPayload == nil {
		return &LoginPayload{}, nil
	}
	return out.LoginUser.AuthPayload, nil
}

func (c *HTTPClient) RegisterUser(ctx context.Context, username, email, password string) (*RegisterPayload, error) {
	var out struct {
		RegisterUser RegisterPayload `json:"registerUser"`
	}
	vars := map[string]any{"username": username, "email": email, "password": password}
	if err := c.Query(ctx, "registerUser", mutationRegister, vars, &out); err != nil {
		return nil, err
	}
	return &out.RegisterUser, nil
}

func (c *HTTPClient) ClassifyEmail(ctx context.Context, sender, subject, body string) (*ClassifyPayload, error) {
	var out struct {
		ClassifyEmail ClassifyPayload `json:"classifyEmail"`
	}
	vars := map[string]any{"sender": sender, "subject": subject, "body": body}
	if err := c.Query(ctx, "classifyEmail", mutationClassify, vars, &out); err != nil {
		return nil, err
	}
	return &out.ClassifyEmail, nil
}

func (c *HTTPClient) AddFeedback(ctx context.Context, f models.FeedbackSubmission) (*FeedbackPayload, error) {
	var out struct {
		AddFeedback FeedbackPayload `json:"addFeedback"`
	}
	var text any
	if f.FeedbackText != "" {
		text = f.FeedbackText
	}
	vars := map[string]any{
		"emailId":             f.EmailID,
		"correctedCategoryId": f.CorrectedCategoryID,
		"feedbackText":        text,
	}
	if err := c.Query(ctx, "addFeedback", mutationFeedback, vars, &out); err != nil {
		return nil, err
	}
	return &out.AddFeedback, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.Query(ctx, "categories", queryCategories, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *HTTPClient) Emails(ctx context.Context) ([]models.ScoredEmail, error) {
	var out struct {
		Emails []models.ScoredEmail `json:"emails"`
	}
	if err := c.Query(ctx, "emails", queryEmails, nil, &out); err != nil {
		return nil, err
	}
	return out.Emails, nil
}

// Email fetches one scored email. A nil result with nil error means the
// server has no such email visible to the caller.
func (c *HTTPClient) Email(ctx context.Context, id int64) (*models.ScoredEmail, error) {
	var out struct {
		Email *models.ScoredEmail `json:"email"`
	}
	if err := c.Query(ctx, "email", queryEmail, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.Email, nil
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.User, error) {
	var out struct {
		Users []models.User `json:"users"`
	}
	if err := c.Query(ctx, "users", queryUsers, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.Stats, error) {
	var out models.Stats
	if err := c.Task(ctx, http.MethodGet, PathStats, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UploadEmails(ctx context.Context, emails []json.RawMessage) (*models.UploadResult, error) {
	var out models.UploadResult
	body := map[string]any{"emails": emails}
	if err := c.Task(ctx, http.MethodPost, PathUpload, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Retrain(ctx context.Context) (*models.TaskResult, error) {
	var out models.TaskResult
	if err := c.Task(ctx, http.MethodPost, PathRetrain, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ Client = (*HTTPClient)(nil)
