// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecords is an in-memory RecordRepository for exercising the JSON
// repositories without a database.
type fakeRecords struct {
	values map[string]string
	putErr error
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{values: make(map[string]string)}
}

func (f *fakeRecords) GetRecord(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", ErrRecordNotFound
	}
	return v, nil
}

func (f *fakeRecords) PutRecord(_ context.Context, key, value string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeRecords) DeleteRecord(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	records := newFakeRecords()
	repo := NewSessionRepository(records, logger.Nop())

	session := models.UserSession{
		UserID:     "u-1",
		Name:       "Dana",
		Email:      "dana@example.com",
		Plan:       models.PlanPremium,
		Status:     models.StatusPremium,
		ExpiryDate: "2027-01-15",
		LastLogin:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Save(testContext(), session))

	got, err := repo.Get(testContext())
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// the blob is stored under the fixed session key
	_, ok := records.values[SessionKey]
	assert.True(t, ok)
}

func TestSessionRepository_Get_Missing(t *testing.T) {
	repo := NewSessionRepository(newFakeRecords(), logger.Nop())

	_, err := repo.Get(testContext())
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSessionRepository_Get_MalformedBlob(t *testing.T) {
	records := newFakeRecords()
	records.values[SessionKey] = `{"userId": truncated`
	repo := NewSessionRepository(records, logger.Nop())

	// corrupt local data must read as "not logged in", not as a failure
	_, err := repo.Get(testContext())
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	records := newFakeRecords()
	repo := NewSessionRepository(records, logger.Nop())

	require.NoError(t, repo.Save(testContext(), models.UserSession{UserID: "u-1"}))
	require.NoError(t, repo.Delete(testContext()))

	_, err := repo.Get(testContext())
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSessionRepository_Save_StoresCamelCaseJSON(t *testing.T) {
	records := newFakeRecords()
	repo := NewSessionRepository(records, logger.Nop())

	require.NoError(t, repo.Save(testContext(), models.UserSession{UserID: "u-1", Plan: models.PlanFree}))

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(records.values[SessionKey]), &raw))
	assert.Contains(t, raw, "userId")
	assert.Contains(t, raw, "plan")
}
