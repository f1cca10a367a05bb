// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/models"
)

// progressRepository persists the learning progress record as a JSON blob
// under the fixed [ProgressKey].
type progressRepository struct {
	logger  *logger.Logger
	records RecordRepository
}

// NewProgressRepository constructs a [ProgressRepository] on top of the
// low-level record repository.
func NewProgressRepository(records RecordRepository, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		records: records,
		logger:  logger,
	}
}

// Get loads the stored progress record. A missing record or a blob that
// fails to parse yields [ErrRecordNotFound] so callers start over from a
// fresh record instead of crashing on corrupt local data.
func (r *progressRepository) Get(ctx context.Context) (models.ProgressRecord, error) {
	log := logger.FromContext(ctx)

	raw, err := r.records.GetRecord(ctx, ProgressKey)
	if err != nil {
		return models.ProgressRecord{}, err
	}

	var record models.ProgressRecord
	if err = json.Unmarshal([]byte(raw), &record); err != nil {
		log.Err(err).Str("func", "*progressRepository.Get").Msg("stored progress is malformed, treating as absent")
		return models.ProgressRecord{}, ErrRecordNotFound
	}

	return record, nil
}

// Save serialises and stores the progress record, replacing any previous one.
func (r *progressRepository) Save(ctx context.Context, record models.ProgressRecord) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(record)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.Save").Msg("error marshalling progress record")
		return err
	}

	return r.records.PutRecord(ctx, ProgressKey, string(raw))
}

// Delete removes the stored progress record.
func (r *progressRepository) Delete(ctx context.Context) error {
	return r.records.DeleteRecord(ctx, ProgressKey)
}
