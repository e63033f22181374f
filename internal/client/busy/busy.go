// Package busy disables a triggering control for the lifetime of the call it
// started. Acquiring a control that is already held fails with ErrBusy, which
// is how a second submission of a pending form is refused.
package busy

import (
	"errors"
	"sync"
)

var ErrBusy = errors.New("operation already in progress")

type Gates struct {
	mu   sync.Mutex
	held map[string]bool
}

func New() *Gates {
	return &Gates{held: make(map[string]bool)}
}

// Acquire disables the named control. The returned release re-enables it and
// is safe to call more than once; callers should defer it so the control is
// released on every path.
func (g *Gates) Acquire(name string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[name] {
		return func() {}, ErrBusy
	}
	g.held[name] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, name)
			g.mu.Unlock()
		})
	}, nil
}

// Run acquires name, runs fn and releases, whatever fn returns or panics.
func (g *Gates) Run(name string, fn func() error) error {
	release, err := g.Acquire(name)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}
