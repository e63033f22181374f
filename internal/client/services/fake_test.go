package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mailtriage/internal/client/storage"
	"github.com/stretchr/testify/require"
)

// fakeClient answers from per-operation funcs; an unset func fails loudly.
type fakeClient struct {
	calls map[string]int

	login      func(username, password string) (*client.LoginPayload, error)
	register   func(username, email, password string) (*client.RegisterPayload, error)
	classify   func(sender, subject, body string) (*client.ClassifyPayload, error)
	feedback   func(f models.FeedbackSubmission) (*client.FeedbackPayload, error)
	categories func() ([]models.Category, error)
	emails     func() ([]models.ScoredEmail, error)
	email      func(id int64) (*models.ScoredEmail, error)
	users      func() ([]models.User, error)
	stats      func() (*models.Stats, error)
	upload     func(emails []json.RawMessage) (*models.UploadResult, error)
	retrain    func() (*models.TaskResult, error)
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient { return &fakeClient{calls: map[string]int{}} }

func (f *fakeClient) hit(op string) { f.calls[op]++ }

func (f *fakeClient) total() int {
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) LoginUser(_ context.Context, u, p string) (*client.LoginPayload, error) {
	f.hit("login")
	return f.login(u, p)
}

func (f *fakeClient) RegisterUser(_ context.Context, u, e, p string) (*client.RegisterPayload, error) {
	f.hit("register")
	return f.register(u, e, p)
}

func (f *fakeClient) ClassifyEmail(_ context.Context, s, subj, b string) (*client.ClassifyPayload, error) {
	f.hit("classify")
	return f.classify(s, subj, b)
}

func (f *fakeClient) AddFeedback(_ context.Context, fb models.FeedbackSubmission) (*client.FeedbackPayload, error) {
	f.hit("feedback")
	return f.feedback(fb)
}

func (f *fakeClient) Categories(context.Context) ([]models.Category, error) {
	f.hit("categories")
	return f.categories()
}

func (f *fakeClient) Emails(context.Context) ([]models.ScoredEmail, error) {
	f.hit("emails")
	return f.emails()
}

func (f *fakeClient) Email(_ context.Context, id int64) (*models.ScoredEmail, error) {
	f.hit("email")
	return f.email(id)
}

func (f *fakeClient) Users(context.Context) ([]models.User, error) {
	f.hit("users")
	return f.users()
}

func (f *fakeClient) Stats(context.Context) (*models.Stats, error) {
	f.hit("stats")
	return f.stats()
}

func (f *fakeClient) UploadEmails(_ context.Context, emails []json.RawMessage) (*models.UploadResult, error) {
	f.hit("upload")
	return f.upload(emails)
}

func (f *fakeClient) Retrain(context.Context) (*models.TaskResult, error) {
	f.hit("retrain")
	return f.retrain()
}

func newRepo(t *testing.T) (metadata.Repository, *sql.DB) {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return metadata.NewSQLiteRepository(db), db
}
