package client

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/trackfit/trackfit/internal/workout"
)

const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is a transient client-local message. It disappears from
// Active() once its display duration has passed.
type Notification struct {
	ID        string
	Type      string
	Message   string
	CreatedAt time.Time
}

// Notifier is the client's in-memory notification center. While a workout
// plan is active a cron entry pushes a rotating goal tip every minute.
// All mutation happens synchronously under the mutex.
type Notifier struct {
	mu   sync.Mutex
	now  func() time.Time
	ttl  time.Duration
	list []Notification
	cron *cron.Cron
}

// NewNotifier creates a notifier whose notifications expire after ttl.
func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{
		now: time.Now,
		ttl: ttl,
	}
}

func (n *Notifier) Push(typ, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.list = append(n.list, Notification{
		ID:        uuid.New().String(),
		Type:      typ,
		Message:   message,
		CreatedAt: n.now(),
	})
}

// Active returns the unexpired notifications, pruning the rest.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	cutoff := n.now().Add(-n.ttl)
	kept := n.list[:0]
	for _, item := range n.list {
		if item.CreatedAt.After(cutoff) {
			kept = append(kept, item)
		}
	}
	n.list = kept

	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}

// StartTips schedules a rotating tip for the goal every minute. No-op if
// tips are already running.
func (n *Notifier) StartTips(goal workout.Goal) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.cron != nil {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc("@every 1m", func() {
		if tip := workout.RandomTip(goal); tip != "" {
			n.Push(NotificationInfo, tip)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	n.cron = c
	return nil
}

// Stop halts the tip schedule and waits for any running job.
func (n *Notifier) Stop() {
	n.mu.Lock()
	c := n.cron
	n.cron = nil
	n.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}
