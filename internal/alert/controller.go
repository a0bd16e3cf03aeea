package alert

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderSnapshot is one order as seen by a kitchen poll cycle.
type OrderSnapshot struct {
	OrderID kernel.UUID
	Number  int64
	Status  order.Status
}

// Signal is invoked for every alerting order on each signal tick.
type Signal func(orderID kernel.UUID)

// Controller tracks which newly observed pending orders the kitchen has not
// yet acknowledged and drives a repeating signal for them. Per order the
// controller walks unseen → alerting → acknowledged or advanced: acknowledged
// through an explicit Acknowledge call, advanced when a poll cycle observes
// the order past pending.
//
// State is session-local and never persisted. The poll goroutine and HTTP
// handlers call in concurrently, so every method takes the mutex.
type Controller struct {
	mu           sync.Mutex
	alerting     map[kernel.UUID]int64
	acknowledged map[kernel.UUID]struct{}
	soundEnabled bool

	signal   Signal
	interval time.Duration
	logger   *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// NewController creates a controller signaling through signal every interval.
func NewController(signal Signal, interval time.Duration, logger *slog.Logger) *Controller {
	return &Controller{
		alerting:     make(map[kernel.UUID]int64),
		acknowledged: make(map[kernel.UUID]struct{}),
		soundEnabled: true,
		signal:       signal,
		interval:     interval,
		logger:       logger.With("component", "kitchen_alert_controller"),
	}
}

// Start launches the single signal loop. Starting an already started
// controller is a no-op.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		return
	}
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(c.stop, c.done)

	c.logger.InfoContext(context.Background(), "Kitchen alert controller started",
		"interval", c.interval)
}

// Stop terminates the signal loop and waits for it to exit.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.stop == nil {
		c.mu.Unlock()
		return
	}
	stop, done := c.stop, c.done
	c.stop = nil
	c.done = nil
	c.mu.Unlock()

	close(stop)
	<-done

	c.logger.InfoContext(context.Background(), "Kitchen alert controller stopped")
}

func (c *Controller) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.fire()
		}
	}
}

// fire invokes the signal for every alerting order, unless sound is muted.
// The set is copied under the lock so a slow signal callback cannot block
// Observe or Acknowledge.
func (c *Controller) fire() {
	c.mu.Lock()
	if !c.soundEnabled || len(c.alerting) == 0 {
		c.mu.Unlock()
		return
	}
	ids := make([]kernel.UUID, 0, len(c.alerting))
	for id := range c.alerting {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	for _, id := range ids {
		c.signal(id)
	}
}

// Observe feeds the controller one poll cycle's kitchen slice. Orders seen
// pending for the first time start alerting unless already acknowledged;
// alerting or acknowledged orders no longer observed pending are considered
// advanced and dropped.
func (c *Controller) Observe(snapshot []OrderSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := make(map[kernel.UUID]int64, len(snapshot))
	for _, s := range snapshot {
		if s.Status == order.Pending {
			pending[s.OrderID] = s.Number
		}
	}

	for id, number := range pending {
		if _, acked := c.acknowledged[id]; acked {
			continue
		}
		c.alerting[id] = number
	}

	for id := range c.alerting {
		if _, still := pending[id]; !still {
			delete(c.alerting, id)
		}
	}
	for id := range c.acknowledged {
		if _, still := pending[id]; !still {
			delete(c.acknowledged, id)
		}
	}
}

// Acknowledge dismisses the alert for an order. The underlying order is
// untouched. Acknowledging twice, or acknowledging an order that never
// alerted, is a no-op with the same outcome: no further signals for that id.
func (c *Controller) Acknowledge(orderID kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.alerting, orderID)
	c.acknowledged[orderID] = struct{}{}
}

// SetSoundEnabled toggles the audible signal. Muting suppresses the callback
// only; alerting state is untouched, so unmuting resumes signaling for
// anything still alerting.
func (c *Controller) SetSoundEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.soundEnabled = enabled
}

// SoundEnabled reports whether the audible signal is active.
func (c *Controller) SoundEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.soundEnabled
}

// IsAlerting reports whether an order is currently alerting.
func (c *Controller) IsAlerting(orderID kernel.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.alerting[orderID]
	return ok
}

// AlertingOrder is one entry of the controller's current alerting set.
type AlertingOrder struct {
	OrderID kernel.UUID
	Number  int64
}

// Alerting returns the current alerting set.
func (c *Controller) Alerting() []AlertingOrder {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]AlertingOrder, 0, len(c.alerting))
	for id, number := range c.alerting {
		result = append(result, AlertingOrder{OrderID: id, Number: number})
	}
	return result
}
