package sessions

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/alert"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/poller"
)

// QueueReader reads a branch's kitchen queue. Satisfied by
// queries.GetKitchenQueueQueryHandler.
type QueueReader interface {
	Handle(ctx context.Context, query queries.GetKitchenQueueQuery) ([]queries.OrderSummaryModel, error)
}

// KitchenSession binds one kitchen view to its branch: a status poller
// reading the branch's kitchen queue and an alert controller fed from every
// poll cycle. The session exists from view mount to view unmount and holds
// no durable state.
type KitchenSession struct {
	branchID kernel.UUID
	poller   *poller.StatusPoller
	alerts   *alert.Controller
	logger   *slog.Logger
}

// NewKitchenSession wires a poller and an alert controller for a branch.
func NewKitchenSession(
	branchID kernel.UUID,
	queueHandler QueueReader,
	signal alert.Signal,
	pollSchedule string,
	alertInterval time.Duration,
	logger *slog.Logger,
) (*KitchenSession, error) {
	if err := branchID.Validate(); err != nil {
		return nil, err
	}

	alerts := alert.NewController(signal, alertInterval, logger)

	fetch := func(ctx context.Context) error {
		query, err := queries.NewGetKitchenQueueQuery(branchID)
		if err != nil {
			return err
		}

		result, err := queueHandler.Handle(ctx, query)
		if err != nil {
			return err
		}

		snapshot := make([]alert.OrderSnapshot, 0, len(result))
		for _, summary := range result {
			status, err := order.StatusFromString(summary.Status)
			if err != nil {
				return err
			}
			snapshot = append(snapshot, alert.OrderSnapshot{
				OrderID: summary.ID,
				Number:  summary.Number,
				Status:  status,
			})
		}

		alerts.Observe(snapshot)
		return nil
	}

	return &KitchenSession{
		branchID: branchID,
		poller:   poller.NewStatusPoller("kitchen", pollSchedule, fetch, logger),
		alerts:   alerts,
		logger:   logger.With("component", "kitchen_session", "branch_id", branchID.String()),
	}, nil
}

// Open starts the session's poller and alert loop.
func (s *KitchenSession) Open() error {
	s.alerts.Start()
	if err := s.poller.Start(); err != nil {
		s.alerts.Stop()
		return err
	}

	s.logger.InfoContext(context.Background(), "Kitchen session opened")
	return nil
}

// Close stops the poller and the alert loop. Alert state dies with the
// session.
func (s *KitchenSession) Close() {
	s.poller.Stop()
	s.alerts.Stop()
	s.logger.InfoContext(context.Background(), "Kitchen session closed")
}

// BranchID returns the branch the session observes.
func (s *KitchenSession) BranchID() kernel.UUID {
	return s.branchID
}

// Alerts exposes the session's alert controller to the HTTP layer.
func (s *KitchenSession) Alerts() *alert.Controller {
	return s.alerts
}
