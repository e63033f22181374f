package state

import (
	"testing"

	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Lifecycle(t *testing.T) {
	s := New()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Credential())

	id := models.Identity{ID: 1, Username: "alice", IsAdmin: true}
	require.NoError(t, s.SetSession("tok", id))

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "tok", s.Credential())
	got, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, id, got)

	s.ClearSession()
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}

func TestSetSession_RejectsEmptyCredential(t *testing.T) {
	s := New()
	require.ErrorIs(t, s.SetSession("", models.Identity{Username: "x"}), ErrEmptyCredential)
	assert.False(t, s.IsAuthenticated())
}

func TestClearSession_DropsDerivedState(t *testing.T) {
	s := New()
	require.NoError(t, s.SetSession("tok", models.Identity{}))
	s.SetCategories([]models.Category{{ID: 1}})
	s.SetCurrentEmail(42)

	s.ClearSession()

	_, loaded := s.Categories()
	assert.False(t, loaded)
	_, has := s.CurrentEmail()
	assert.False(t, has)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	s := New()
	in := []models.Category{{ID: 1, Name: "a"}}
	s.SetCategories(in)
	in[0].Name = "mutated"

	out, loaded := s.Categories()
	require.True(t, loaded)
	assert.Equal(t, "a", out[0].Name)

	out[0].Name = "again"
	again, _ := s.Categories()
	assert.Equal(t, "a", again[0].Name)
}

func TestSetCategories_EmptyStillLoaded(t *testing.T) {
	s := New()
	s.SetCategories(nil)
	_, loaded := s.Categories()
	assert.True(t, loaded)
}

func TestCurrentEmail(t *testing.T) {
	s := New()
	_, ok := s.CurrentEmail()
	assert.False(t, ok)

	s.SetCurrentEmail(5)
	id, ok := s.CurrentEmail()
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)

	s.SetCurrentEmail(6)
	id, _ = s.CurrentEmail()
	assert.Equal(t, int64(6), id)

	s.ClearSession()
	_, ok = s.CurrentEmail()
	assert.False(t, ok)
}
