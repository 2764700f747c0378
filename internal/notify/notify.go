// Package notify is the user-facing status message sink. Notifications are
// fire-and-forget: the catalog store emits them and never waits on delivery.
package notify

import (
	"log"
	"sync"
)

type Kind string

const (
	KindInfo  Kind = "info"
	KindError Kind = "error"
)

// Notification is a single user-facing status message.
type Notification struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Notifier delivers status messages to the user. Implementations must not
// block the caller.
type Notifier interface {
	Notify(kind Kind, title, description string)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

func (LogNotifier) Notify(kind Kind, title, description string) {
	if kind == KindError {
		log.Printf("[NOTIFY ERROR] %s: %s", title, description)
		return
	}
	log.Printf("[NOTIFY] %s: %s", title, description)
}

// Recorder captures notifications for inspection in tests.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

var _ Notifier = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(kind Kind, title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, Notification{Kind: kind, Title: title, Description: description})
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}

// Nop discards all notifications.
type Nop struct{}

var _ Notifier = Nop{}

func (Nop) Notify(Kind, string, string) {}
