package busy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertFree(t *testing.T, g *Gates, name string) {
	t.Helper()
	release, err := g.Acquire(name)
	require.NoError(t, err, "%s still held", name)
	release()
}

func TestAcquire_SecondAcquireIsBusy(t *testing.T) {
	g := New()

	release, err := g.Acquire("login")
	require.NoError(t, err)

	_, err = g.Acquire("login")
	require.ErrorIs(t, err, ErrBusy)

	_, err = g.Acquire("register")
	require.NoError(t, err, "controls are independent")

	release()
	release()
	assertFree(t, g, "login")
}

func TestRun_ReleasesOnError(t *testing.T) {
	g := New()
	boom := errors.New("boom")

	err := g.Run("classify", func() error {
		_, err := g.Acquire("classify")
		assert.ErrorIs(t, err, ErrBusy)
		return boom
	})
	require.ErrorIs(t, err, boom)
	assertFree(t, g, "classify")
}

func TestRun_ReleasesOnPanic(t *testing.T) {
	g := New()
	require.Panics(t, func() {
		_ = g.Run("upload", func() error { panic("x") })
	})
	assertFree(t, g, "upload")
}

func TestRun_RefusesWhileHeld(t *testing.T) {
	g := New()
	release, err := g.Acquire("upload")
	require.NoError(t, err)
	defer release()

	called := false
	err = g.Run("upload", func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrBusy)
	assert.False(t, called)
}
