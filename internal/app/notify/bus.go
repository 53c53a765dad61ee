// internal/app/notify/bus.go

// Package notify holds the transient message queue that backs the toast
// area of every page. Messages expire on their own after a short TTL or
// can be dismissed individually; nothing survives a restart.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind is the visual category of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is one transient message.
type Notification struct {
	ID      string
	Kind    Kind
	Message string
	At      time.Time
}

// DefaultTTL is how long a notification stays visible unless dismissed.
const DefaultTTL = 5 * time.Second

// Bus is the process-wide notification queue. Insertion order is the
// display stacking order.
type Bus struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time // swapped in tests
	items []Notification
}

// NewBus creates a Bus. ttl <= 0 selects DefaultTTL.
func NewBus(ttl time.Duration) *Bus {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Bus{ttl: ttl, now: time.Now}
}

// Push appends a message and returns its id.
func (b *Bus) Push(kind Kind, message string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
		At:      b.now(),
	}
	b.items = append(b.items, n)
	return n.ID
}

func (b *Bus) Success(message string) string { return b.Push(KindSuccess, message) }
func (b *Bus) Error(message string) string   { return b.Push(KindError, message) }
func (b *Bus) Info(message string) string    { return b.Push(KindInfo, message) }

// Dismiss removes one notification; others keep their order.
func (b *Bus) Dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, n := range b.items {
		if n.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// Active prunes anything older than the TTL and returns a copy of what
// remains, oldest first.
func (b *Bus) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := b.now().Add(-b.ttl)
	live := b.items[:0]
	for _, n := range b.items {
		if n.At.After(cutoff) {
			live = append(live, n)
		}
	}
	b.items = live

	out := make([]Notification, len(b.items))
	copy(out, b.items)
	return out
}
