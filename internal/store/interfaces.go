package store

import (
	"context"

	"github.com/paydev-web/dmlabs-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Fixed storage keys. Records are shared across accounts on the same device
// by design: login does not reset them, only signup wipes progress.
const (
	// SessionKey addresses the persisted UserSession blob.
	SessionKey = "dmlabs_user"
	// ProgressKey addresses the persisted ProgressRecord blob.
	ProgressKey = "dmlabs_progress"
)

// RecordRepository is the low-level key-value repository over the local
// database. Values are opaque JSON blobs; one key maps to one record.
type RecordRepository interface {
	GetRecord(ctx context.Context, key string) (string, error)
	PutRecord(ctx context.Context, key, value string) error
	DeleteRecord(ctx context.Context, key string) error
}

// SessionRepository persists the single UserSession record.
//
// Get returns ErrRecordNotFound when no session is stored or the stored blob
// does not parse (corrupt data is treated as absence, never as a failure).
type SessionRepository interface {
	Get(ctx context.Context) (models.UserSession, error)
	Save(ctx context.Context, session models.UserSession) error
	Delete(ctx context.Context) error
}

// ProgressRepository persists the single ProgressRecord. Same absence and
// corruption semantics as SessionRepository.
type ProgressRepository interface {
	Get(ctx context.Context) (models.ProgressRecord, error)
	Save(ctx context.Context, record models.ProgressRecord) error
	Delete(ctx context.Context) error
}
