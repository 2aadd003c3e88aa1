// Package views hosts the detached view-counter updater. A detail fetch
// schedules an increment here after its response is already produced;
// delivery is at-most-once: a full queue or a process restart between
// scheduling and execution drops the event silently.
package views

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/map-my-world-service/internal/domain/repository"
)

const registerTimeout = 5 * time.Second

// Event is one recorded view of a location filtered by a category.
type Event struct {
	LocationID int64
	CategoryID int64
}

// Worker consumes view events from a bounded in-memory queue and applies
// the total_reviews increment. Every failure is logged and swallowed;
// nothing propagates back to the request that scheduled the event.
type Worker struct {
	repo     repository.LocationCategoryRepository
	logger   *zap.Logger
	queue    chan Event
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewWorker(
	repo repository.LocationCategoryRepository,
	logger *zap.Logger,
	queueSize int,
) *Worker {
	if queueSize <= 0 {
		queueSize = 1024
	}

	return &Worker{
		repo:     repo,
		logger:   logger,
		queue:    make(chan Event, queueSize),
		stopChan: make(chan struct{}),
	}
}

func (w *Worker) Name() string {
	return "view-counter"
}

// Enqueue schedules a view registration without blocking the caller.
// When the queue is full the event is dropped.
func (w *Worker) Enqueue(locationID, categoryID int64) {
	select {
	case w.queue <- Event{LocationID: locationID, CategoryID: categoryID}:
	default:
		w.logger.Warn("View queue full, dropping view event",
			zap.Int64("location_id", locationID),
			zap.Int64("category_id", categoryID),
		)
	}
}

func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("View counter worker started", zap.Int("queue_capacity", cap(w.queue)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopChan:
			return nil
		case ev := <-w.queue:
			w.register(ev)
		}
	}
}

func (w *Worker) Stop() error {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
	return nil
}

func (w *Worker) register(ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), registerTimeout)
	defer cancel()

	matched, err := w.repo.IncrementTotalReviews(ctx, ev.LocationID, ev.CategoryID)
	if err != nil {
		w.logger.Error("Failed to register view",
			zap.Int64("location_id", ev.LocationID),
			zap.Int64("category_id", ev.CategoryID),
			zap.Error(err),
		)
		return
	}

	if !matched {
		// No live (location, category) row: silent no-op.
		w.logger.Debug("View event matched no location category",
			zap.Int64("location_id", ev.LocationID),
			zap.Int64("category_id", ev.CategoryID),
		)
	}
}
