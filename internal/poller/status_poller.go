package poller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Fetch executes one poll cycle: read the view's order slice and hand it to
// whoever consumes it.
type Fetch func(ctx context.Context) error

// StatusPoller refreshes one actor view's slice of the order store on a
// fixed schedule. It carries no business logic of its own: the fetch func
// owns what is read and what happens with the result. A fetch error is
// logged and absorbed, the next cycle re-establishes ground truth.
type StatusPoller struct {
	name     string
	schedule string
	fetch    Fetch
	cron     *cron.Cron
	logger   *slog.Logger
}

// EverySeconds builds a cron-with-seconds schedule firing every n seconds.
func EverySeconds(n int) string {
	return fmt.Sprintf("*/%d * * * * *", n)
}

// NewStatusPoller creates a poller named for its view with a
// cron-with-seconds schedule.
func NewStatusPoller(name, schedule string, fetch Fetch, logger *slog.Logger) *StatusPoller {
	return &StatusPoller{
		name:     name,
		schedule: schedule,
		fetch:    fetch,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_poller", "view", name),
	}
}

// Start begins the polling loop.
func (p *StatusPoller) Start() error {
	_, err := p.cron.AddFunc(p.schedule, func() {
		ctx := context.Background()
		if err := p.fetch(ctx); err != nil {
			p.logger.ErrorContext(ctx, "Poll cycle failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s poller: %w", p.name, err)
	}

	p.cron.Start()
	p.logger.InfoContext(context.Background(), "Status poller started", "schedule", p.schedule)
	return nil
}

// Stop stops the polling loop. Cycles already running are left to finish.
func (p *StatusPoller) Stop() {
	p.cron.Stop()
	p.logger.InfoContext(context.Background(), "Status poller stopped")
}
