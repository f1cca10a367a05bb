package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paydev-web/dmlabs-client/internal/logger"
)

// recordRepository is the SQLite-backed implementation of [RecordRepository].
// It stores opaque JSON blobs in the "records" table, one row per key.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// GetRecord returns the value stored under key, or [ErrRecordNotFound] when
// no row exists.
func (r *recordRepository) GetRecord(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.GetRecord").Msg("error building select query")
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordRepository.GetRecord").Msg("error: scanning error")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

// PutRecord stores value under key, overwriting any previous value.
func (r *recordRepository) PutRecord(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecordQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.PutRecord").Msg("error building upsert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*recordRepository.PutRecord").Msg("error executing upsert statement")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteRecord removes the record stored under key. Deleting a missing key is
// not an error.
func (r *recordRepository) DeleteRecord(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteRecord").Msg("error building delete query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*recordRepository.DeleteRecord").Msg("error executing delete statement")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
