// Package view holds the tab state machine that sits between the services
// and whatever renders them. It never prints; a renderer reads its state and
// drains the notifier.
package view

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/client/notify"
	"github.com/dmitrijs2005/mailtriage/internal/logging"
)

// Session is the part of the application state the controller gates on.
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// CategoryLoader refetches the category cache.
type CategoryLoader interface {
	Reload(ctx context.Context) ([]models.Category, error)
}

// Controller tracks the active tab and the data each tab fetched on entry.
type Controller struct {
	session  Session
	client   client.Client
	catalog  CategoryLoader
	notifier notify.Notifier
	logger   logging.Logger

	mu         sync.RWMutex
	active     Tab
	loaded     map[Tab]bool
	stats      *models.Stats
	emails     []models.ScoredEmail
	users      []models.User
	categories []models.Category
}

func NewController(session Session, c client.Client, catalog CategoryLoader, n notify.Notifier, logger logging.Logger) *Controller {
	return &Controller{
		session:  session,
		client:   c,
		catalog:  catalog,
		notifier: n,
		logger:   logger,
		loaded:   make(map[Tab]bool),
	}
}

// Mode is ModeTabs exactly when a session exists.
func (c *Controller) Mode() Mode {
	if c.session.IsAuthenticated() {
		return ModeTabs
	}
	return ModeLoggedOut
}

// Start enters the dashboard when a session exists and does nothing
// otherwise. It is called after startup restore and after login.
func (c *Controller) Start(ctx context.Context) {
	c.Reset()
	if c.Mode() == ModeTabs {
		_ = c.Enter(ctx, TabDashboard)
	}
}

// Reset forgets the active tab and everything loaded. It is called on logout.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = ""
	c.loaded = make(map[Tab]bool)
	c.stats = nil
	c.emails = nil
	c.users = nil
	c.categories = nil
}

// Enter switches to tab and runs its load. Only the gate can refuse the
// transition; a failed load is notified and leaves the tab active with
// Loaded(tab) false.
func (c *Controller) Enter(ctx context.Context, tab Tab) error {
	if c.Mode() != ModeTabs {
		return ErrNotAuthenticated
	}
	tab, err := ParseTab(string(tab))
	if err != nil {
		return err
	}
	if tab == TabAdmin && !c.session.IsAdmin() {
		notify.Error(c.notifier, ErrAccessDenied.Error())
		c.logger.Info(ctx, "admin tab refused", logging.KeyTab, tab)
		return ErrAccessDenied
	}

	c.mu.Lock()
	c.active = tab
	c.loaded[tab] = false
	c.mu.Unlock()

	c.logger.Debug(ctx, "tab entered", logging.KeyTab, tab)

	ok := c.load(ctx, tab)

	c.mu.Lock()
	c.loaded[tab] = ok
	c.mu.Unlock()
	return nil
}

// load fetches the tab's data and reports whether every part arrived.
func (c *Controller) load(ctx context.Context, tab Tab) bool {
	switch tab {
	case TabDashboard:
		stats, err := c.client.Stats(ctx)
		if err != nil {
			return c.loadFailed(ctx, tab, "statistics", err)
		}
		c.mu.Lock()
		c.stats = stats
		c.mu.Unlock()

	case TabClassify:
		return c.loadCategories(ctx, tab)

	case TabEmails:
		emails, err := c.client.Emails(ctx)
		if err != nil {
			return c.loadFailed(ctx, tab, "emails", err)
		}
		c.mu.Lock()
		c.emails = emails
		c.mu.Unlock()

	case TabAdmin:
		ok := c.loadCategories(ctx, tab)
		users, err := c.client.Users(ctx)
		if err != nil {
			return c.loadFailed(ctx, tab, "users", err)
		}
		c.mu.Lock()
		c.users = users
		c.mu.Unlock()
		return ok

	case TabUpload:
	}
	return true
}

func (c *Controller) loadCategories(ctx context.Context, tab Tab) bool {
	cats, err := c.catalog.Reload(ctx)
	if err != nil {
		return c.loadFailed(ctx, tab, "categories", err)
	}
	c.mu.Lock()
	c.categories = cats
	c.mu.Unlock()
	return true
}

func (c *Controller) loadFailed(ctx context.Context, tab Tab, what string, err error) bool {
	c.logger.Warn(ctx, "tab load failed", logging.KeyTab, tab, "part", what, logging.KeyError, err)
	notify.Error(c.notifier, "Error loading "+what+": "+err.Error())
	return false
}

// ActiveTab is "" in logged-out mode.
func (c *Controller) ActiveTab() Tab {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Loaded reports whether the last entry into tab finished its load.
func (c *Controller) Loaded(tab Tab) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded[tab]
}

func (c *Controller) Stats() *models.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func (c *Controller) Emails() []models.ScoredEmail {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.ScoredEmail(nil), c.emails...)
}

func (c *Controller) Users() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.User(nil), c.users...)
}

// Categories returns the list fetched on the last classify or admin entry.
func (c *Controller) Categories() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Category(nil), c.categories...)
}
