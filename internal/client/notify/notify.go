// Package notify is the single channel through which user-visible outcomes
// travel: every success, failure or informational notice is a Notification
// with a message and a level.
package notify

import "sync"

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Notification struct {
	Message string
	Level   Level
}

type Notifier interface {
	Notify(n Notification)
}

// Success, Error and Info are shorthands for Notify.
func Success(n Notifier, msg string) { n.Notify(Notification{Message: msg, Level: LevelSuccess}) }
func Error(n Notifier, msg string)   { n.Notify(Notification{Message: msg, Level: LevelError}) }
func Info(n Notifier, msg string)    { n.Notify(Notification{Message: msg, Level: LevelInfo}) }

// Queue buffers notifications until a renderer drains them.
type Queue struct {
	mu    sync.Mutex
	items []Notification
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Notify(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
}

// Drain returns queued notifications in arrival order and empties the queue.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}
