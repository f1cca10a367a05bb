package workers

import (
	"context"
	"sync"
	"time"

	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/service"
	"github.com/paydev-web/dmlabs-client/models"
)

type expiryWatcher struct {
	sessionService service.ClientSessionService
	notify         func(models.ExpiryNotice)
	logger         *logger.Logger
	now            func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiryWatcher creates an expiryWatcher that periodically derives the
// expiry notice for the stored session and hands it to notify. The watcher is
// idle until Start is called. notify may be nil.
func NewExpiryWatcher(sessionService service.ClientSessionService, notify func(models.ExpiryNotice), log *logger.Logger) ExpiryWatcher {
	return &expiryWatcher{
		sessionService: sessionService,
		notify:         notify,
		logger:         log,
		now:            time.Now,
	}
}

// Start implements ExpiryWatcher. It stops any previously running watcher,
// then launches a background goroutine that checks every interval. If
// interval is zero or negative it defaults to 15 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (w *expiryWatcher) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.check(jobCtx)
			}
		}
	}()
}

// Stop implements ExpiryWatcher. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the watcher is not running (no-op in that case).
func (w *expiryWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *expiryWatcher) check(ctx context.Context) {
	session, err := w.sessionService.CheckAuth(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*expiryWatcher.check").Msg("error checking session")
		return
	}
	if session == nil {
		return
	}

	notice := service.ExpiryNoticeFor(session, w.now())
	if notice.Expired {
		w.logger.Warn().Str("func", "*expiryWatcher.check").Msg("premium subscription expired")
	} else if notice.ExpiringSoon {
		w.logger.Info().Str("func", "*expiryWatcher.check").Int("daysLeft", notice.DaysLeft).Msg("premium subscription expiring soon")
	}

	if w.notify != nil {
		w.notify(notice)
	}
}
