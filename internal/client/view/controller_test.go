package view

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/client/notify"
	"github.com/dmitrijs2005/mailtriage/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	authenticated, admin bool
}

func (s *fakeSession) IsAuthenticated() bool { return s.authenticated }
func (s *fakeSession) IsAdmin() bool         { return s.authenticated && s.admin }

// fakeBackend implements only the reads the controller issues; anything else
// hits the nil embedded interface and panics.
type fakeBackend struct {
	client.Client
	calls map[string]int

	statsErr, emailsErr, usersErr error
}

func (f *fakeBackend) Stats(context.Context) (*models.Stats, error) {
	f.calls["stats"]++
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &models.Stats{TotalEmails: 10, AvgConfidence: 0.72}, nil
}

func (f *fakeBackend) Emails(context.Context) ([]models.ScoredEmail, error) {
	f.calls["emails"]++
	if f.emailsErr != nil {
		return nil, f.emailsErr
	}
	return []models.ScoredEmail{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeBackend) Users(context.Context) ([]models.User, error) {
	f.calls["users"]++
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return []models.User{{ID: 1, Username: "root"}}, nil
}

type fakeCatalog struct {
	calls int
	err   error
}

func (c *fakeCatalog) Reload(context.Context) ([]models.Category, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []models.Category{{ID: 1, Name: "Work"}}, nil
}

type fixture struct {
	session *fakeSession
	backend *fakeBackend
	catalog *fakeCatalog
	queue   *notify.Queue
	ctrl    *Controller
}

func newFixture(authenticated, admin bool) *fixture {
	f := &fixture{
		session: &fakeSession{authenticated: authenticated, admin: admin},
		backend: &fakeBackend{calls: map[string]int{}},
		catalog: &fakeCatalog{},
		queue:   notify.NewQueue(),
	}
	f.ctrl = NewController(f.session, f.backend, f.catalog, f.queue, logging.Discard())
	return f
}

func TestStart_LoggedOutPermitsNoTransitions(t *testing.T) {
	f := newFixture(false, false)
	f.ctrl.Start(context.Background())

	assert.Equal(t, ModeLoggedOut, f.ctrl.Mode())
	assert.Equal(t, Tab(""), f.ctrl.ActiveTab())

	for _, tab := range Tabs {
		assert.ErrorIs(t, f.ctrl.Enter(context.Background(), tab), ErrNotAuthenticated)
	}
	assert.Equal(t, Tab(""), f.ctrl.ActiveTab())
	assert.Empty(t, f.backend.calls)
}

func TestStart_SessionLandsOnDashboard(t *testing.T) {
	f := newFixture(true, false)
	f.ctrl.Start(context.Background())

	assert.Equal(t, ModeTabs, f.ctrl.Mode())
	assert.Equal(t, TabDashboard, f.ctrl.ActiveTab())
	assert.True(t, f.ctrl.Loaded(TabDashboard))
	require.NotNil(t, f.ctrl.Stats())
	assert.Equal(t, 10, f.ctrl.Stats().TotalEmails)
}

func TestEnter_LoadsOncePerEntry(t *testing.T) {
	f := newFixture(true, false)
	ctx := context.Background()

	require.NoError(t, f.ctrl.Enter(ctx, TabDashboard))
	require.NoError(t, f.ctrl.Enter(ctx, TabDashboard))
	assert.Equal(t, 2, f.backend.calls["stats"])

	require.NoError(t, f.ctrl.Enter(ctx, TabClassify))
	require.NoError(t, f.ctrl.Enter(ctx, TabClassify))
	assert.Equal(t, 2, f.catalog.calls)
	assert.Len(t, f.ctrl.Categories(), 1)

	require.NoError(t, f.ctrl.Enter(ctx, TabEmails))
	assert.Equal(t, 1, f.backend.calls["emails"])
	assert.Len(t, f.ctrl.Emails(), 2)

	before := len(f.backend.calls)
	require.NoError(t, f.ctrl.Enter(ctx, TabUpload))
	assert.Equal(t, before, len(f.backend.calls))
	assert.True(t, f.ctrl.Loaded(TabUpload))
	assert.Equal(t, TabUpload, f.ctrl.ActiveTab())
	assert.Empty(t, f.queue.Drain())
}

func TestEnter_AdminDeniedForNonAdmin(t *testing.T) {
	f := newFixture(true, false)
	ctx := context.Background()
	require.NoError(t, f.ctrl.Enter(ctx, TabEmails))
	f.queue.Drain()

	err := f.ctrl.Enter(ctx, TabAdmin)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, TabEmails, f.ctrl.ActiveTab())
	assert.Zero(t, f.backend.calls["users"])

	got := f.queue.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, notify.LevelError, got[0].Level)
	assert.Contains(t, got[0].Message, "access denied")
}

func TestEnter_AdminLoadsCategoriesAndUsers(t *testing.T) {
	f := newFixture(true, true)
	require.NoError(t, f.ctrl.Enter(context.Background(), TabAdmin))

	assert.Equal(t, TabAdmin, f.ctrl.ActiveTab())
	assert.True(t, f.ctrl.Loaded(TabAdmin))
	assert.Equal(t, 1, f.catalog.calls)
	assert.Len(t, f.ctrl.Users(), 1)
}

func TestEnter_LoadFailureKeepsTab(t *testing.T) {
	f := newFixture(true, true)
	boom := errors.New("connection refused")
	f.backend.statsErr = boom
	f.catalog.err = boom

	require.NoError(t, f.ctrl.Enter(context.Background(), TabDashboard))
	assert.Equal(t, TabDashboard, f.ctrl.ActiveTab())
	assert.False(t, f.ctrl.Loaded(TabDashboard))

	require.NoError(t, f.ctrl.Enter(context.Background(), TabAdmin))
	assert.Equal(t, TabAdmin, f.ctrl.ActiveTab())
	assert.False(t, f.ctrl.Loaded(TabAdmin))
	assert.Len(t, f.ctrl.Users(), 1)

	got := f.queue.Drain()
	require.Len(t, got, 2)
	for _, n := range got {
		assert.Equal(t, notify.LevelError, n.Level)
		assert.Contains(t, n.Message, "connection refused")
	}
}

func TestEnter_UnknownTab(t *testing.T) {
	f := newFixture(true, false)
	require.NoError(t, f.ctrl.Enter(context.Background(), TabUpload))

	assert.ErrorIs(t, f.ctrl.Enter(context.Background(), Tab("settings")), ErrUnknownTab)
	assert.Equal(t, TabUpload, f.ctrl.ActiveTab())
}

func TestReset_ForgetsEverything(t *testing.T) {
	f := newFixture(true, false)
	f.ctrl.Start(context.Background())
	require.NoError(t, f.ctrl.Enter(context.Background(), TabEmails))

	f.ctrl.Reset()

	assert.Equal(t, Tab(""), f.ctrl.ActiveTab())
	assert.False(t, f.ctrl.Loaded(TabEmails))
	assert.Nil(t, f.ctrl.Stats())
	assert.Empty(t, f.ctrl.Emails())
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab(" Admin ")
	require.NoError(t, err)
	assert.Equal(t, TabAdmin, tab)

	_, err = ParseTab("inbox")
	assert.ErrorIs(t, err, ErrUnknownTab)
}
