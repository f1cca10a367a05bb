// Package workers holds the client's background jobs.
package workers

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// ExpiryWatcher defines the contract for the background job that watches the
// premium expiry while the dashboard is open. It only observes and notifies;
// it never writes the session, so status refresh stays lazy.
type ExpiryWatcher interface {
	// Start launches the background goroutine. It checks every interval,
	// defaulting to 15 minutes if interval is zero or negative. Any
	// previously running watcher is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
