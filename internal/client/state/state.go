// Package state holds the client's process-wide mutable state in one object
// that is injected into every component: the session (credential plus
// identity), the category cache and the id of the most recently scored email.
//
// Each part has a single owning component that mutates it (the auth service
// owns the session, the catalog owns the cache, the classify service owns the
// current email); everyone else only reads.
package state

import (
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/mailtriage/internal/client/models"
)

var ErrEmptyCredential = errors.New("credential must not be empty")

// Session is an authenticated credential together with its identity. The two
// never exist apart.
type Session struct {
	Credential string
	Identity   models.Identity
}

type AppState struct {
	mu sync.RWMutex

	session *Session

	categories       []models.Category
	categoriesLoaded bool

	currentEmailID int64
	hasCurrent     bool
}

func New() *AppState {
	return &AppState{}
}

// Credential implements client.CredentialSource.
func (s *AppState) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Credential
}

func (s *AppState) Session() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

func (s *AppState) Identity() (models.Identity, bool) {
	sess, ok := s.Session()
	return sess.Identity, ok
}

func (s *AppState) IsAuthenticated() bool {
	_, ok := s.Session()
	return ok
}

func (s *AppState) IsAdmin() bool {
	id, ok := s.Identity()
	return ok && id.IsAdmin
}

// SetSession installs credential and identity together.
func (s *AppState) SetSession(credential string, identity models.Identity) error {
	if credential == "" {
		return ErrEmptyCredential
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &Session{Credential: credential, Identity: identity}
	return nil
}

// ClearSession drops the session along with everything derived from it: the
// category cache and the current scored email. Logout is its only caller.
func (s *AppState) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.categories = nil
	s.categoriesLoaded = false
	s.currentEmailID = 0
	s.hasCurrent = false
}

// Categories returns a copy of the cache and whether it has been loaded.
func (s *AppState) Categories() ([]models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories), s.categoriesLoaded
}

func (s *AppState) SetCategories(c []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = slices.Clone(c)
	s.categoriesLoaded = true
}

func (s *AppState) CurrentEmail() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentEmailID, s.hasCurrent
}

func (s *AppState) SetCurrentEmail(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentEmailID = id
	s.hasCurrent = true
}
