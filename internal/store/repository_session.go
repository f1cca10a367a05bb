// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/models"
)

// sessionRepository persists the authenticated user session as a JSON blob
// under the fixed [SessionKey].
type sessionRepository struct {
	logger  *logger.Logger
	records RecordRepository
}

// NewSessionRepository constructs a [SessionRepository] on top of the
// low-level record repository.
func NewSessionRepository(records RecordRepository, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		records: records,
		logger:  logger,
	}
}

// Get loads the stored session. A missing record or a blob that fails to
// parse yields [ErrRecordNotFound]; a corrupt session must look like a
// logged-out state, not a fatal error.
func (r *sessionRepository) Get(ctx context.Context) (models.UserSession, error) {
	log := logger.FromContext(ctx)

	raw, err := r.records.GetRecord(ctx, SessionKey)
	if err != nil {
		return models.UserSession{}, err
	}

	var session models.UserSession
	if err = json.Unmarshal([]byte(raw), &session); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Get").Msg("stored session is malformed, treating as absent")
		return models.UserSession{}, ErrRecordNotFound
	}

	return session, nil
}

// Save serialises and stores the session, replacing any previous one.
func (r *sessionRepository) Save(ctx context.Context, session models.UserSession) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("error marshalling session")
		return err
	}

	return r.records.PutRecord(ctx, SessionKey, string(raw))
}

// Delete removes the stored session.
func (r *sessionRepository) Delete(ctx context.Context) error {
	return r.records.DeleteRecord(ctx, SessionKey)
}
