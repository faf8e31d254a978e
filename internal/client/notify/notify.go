// Package notify carries transient user-facing messages ("toasts") from the
// services layer to whichever front end is showing them.
package notify

import (
	"context"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Notification struct {
	Level   Level
	Message string
}

// Notifier shows a notification to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Success and Error are shorthands for Notify.
func Success(ctx context.Context, n Notifier, msg string) {
	n.Notify(ctx, Notification{Level: LevelSuccess, Message: msg})
}

func Error(ctx context.Context, n Notifier, msg string) {
	n.Notify(ctx, Notification{Level: LevelError, Message: msg})
}

// Queue buffers notifications until they are drained, newest first. The web
// dashboard keeps one per browser session and renders it as flash messages.
type Queue struct {
	mu    sync.Mutex
	items []Notification
}

var _ Notifier = (*Queue)(nil)

func (q *Queue) Notify(_ context.Context, n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
}

// Drain returns the pending notifications, newest first, and empties the queue.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.items))
	for i, n := range q.items {
		out[len(q.items)-1-i] = n
	}
	q.items = nil
	return out
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, n Notification)

func (f Func) Notify(ctx context.Context, n Notification) { f(ctx, n) }
