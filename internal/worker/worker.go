package worker

import (
	"context"
)

// Worker is a long-running background task detached from the HTTP
// request/response cycle.
type Worker interface {
	// Start runs the worker loop until the context is canceled or Stop
	// is called.
	Start(ctx context.Context) error

	// Stop signals the worker to finish.
	Stop() error

	// Name identifies the worker in logs.
	Name() string
}
