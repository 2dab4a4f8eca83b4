package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shopline/storefront/internal/adapter/notify"
	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/domain/repository"
)

// EventDispatcher fans order events out to the activity log and the
// outbound webhook on a worker pool. Publish never blocks order
// handling: a full queue drops the event with a warning.
type EventDispatcher struct {
	activity repository.ActivityRepository
	sender   notify.Sender
	workers  int
	logger   *slog.Logger

	events chan model.OrderEvent
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewEventDispatcher constructs the dispatcher with its worker pool.
func NewEventDispatcher(activity repository.ActivityRepository, sender notify.Sender, workers, queueSize int, logger *slog.Logger) *EventDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &EventDispatcher{
		activity: activity,
		sender:   sender,
		workers:  workers,
		logger:   logger,
		events:   make(chan model.OrderEvent, queueSize),
	}
}

// Publish enqueues an event for asynchronous handling.
func (d *EventDispatcher) Publish(event model.OrderEvent) {
	select {
	case d.events <- event:
	default:
		d.logger.Warn("event queue full, dropping event",
			slog.String("order", event.OrderNumber),
			slog.String("action", string(event.Action)),
		)
	}
}

// Start launches background processing.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop drains nothing further and waits for all workers to finish.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *EventDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-d.events:
			if !ok {
				return
			}
			d.handle(ctx, event)
		}
	}
}

func (d *EventDispatcher) handle(ctx context.Context, event model.OrderEvent) {
	entry := model.ActivityEntry{
		UserID:   event.ActorID,
		Action:   string(event.Action),
		Entity:   "order",
		EntityID: event.OrderID,
	}
	if err := d.activity.Record(ctx, entry); err != nil && !errors.Is(err, context.Canceled) {
		d.logger.Error("record activity failed",
			slog.String("order", event.OrderNumber),
			slog.String("error", err.Error()),
		)
	}

	if err := d.sender.Send(ctx, event); err != nil {
		var rateErr notify.TooManyRequestsError
		switch {
		case errors.As(err, &rateErr):
			d.logger.Warn("webhook rate limited", slog.Duration("retry_after", rateErr.RetryAfter))
			select {
			case <-ctx.Done():
			case <-time.After(rateErr.RetryAfter):
				if err := d.sender.Send(ctx, event); err != nil {
					d.logger.Error("webhook retry failed", slog.String("order", event.OrderNumber), slog.String("error", err.Error()))
				}
			}
		case errors.Is(err, context.Canceled):
		default:
			d.logger.Error("webhook send failed",
				slog.String("order", event.OrderNumber),
				slog.String("error", err.Error()),
			)
		}
	}
}
