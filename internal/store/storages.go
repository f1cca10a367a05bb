package store

import (
	"context"

	"github.com/paydev-web/dmlabs-client/internal/config"
	"github.com/paydev-web/dmlabs-client/internal/logger"
)

// ClientStorages bundles the repositories over the local database.
type ClientStorages struct {
	Sessions SessionRepository
	Progress ProgressRepository
}

// NewClientStorages opens the local SQLite database, applies pending
// migrations and wires up the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewClientStorages").Msg("error applying migrations")
		return nil, err
	}

	records := NewRecordRepository(db, log)

	return &ClientStorages{
		Sessions: NewSessionRepository(records, log),
		Progress: NewProgressRepository(records, log),
	}, nil
}
