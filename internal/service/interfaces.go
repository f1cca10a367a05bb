package service

import (
	"context"

	"github.com/paydev-web/dmlabs-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientSessionService defines the contract for inspecting the locally
// persisted session.
type ClientSessionService interface {
	// CheckAuth loads the stored session and recomputes its effective status
	// from the plan and expiry date. When the recomputed status differs from
	// the cached one the session is persisted in place, so an expiry that
	// happened while the app was closed is picked up on the next start.
	// Returns nil without error when no session is stored.
	CheckAuth(ctx context.Context) (*models.UserSession, error)
}

// ClientAuthService defines the contract for account operations against the
// backend and the resulting local session lifecycle.
type ClientAuthService interface {
	// Login authenticates against the backend and persists the resulting
	// session. Stored progress is left untouched: a returning user keeps
	// their journey.
	Login(ctx context.Context, email, password string) (models.UserSession, error)

	// Signup creates a new account, persists a fresh session and deletes any
	// stored progress record so the new account starts the journey over.
	Signup(ctx context.Context, name, email, password, phone string) (models.UserSession, error)

	// Logout deletes the stored session. Progress stays on the device.
	Logout(ctx context.Context) error

	// ResetPassword asks the backend to send reset instructions and returns
	// the backend's confirmation message.
	ResetPassword(ctx context.Context, email string) (string, error)
}

// ClientCatalogService defines the contract for fetching the tool catalog and
// resolving launch URLs.
type ClientCatalogService interface {
	// LoadCatalog fetches the tool list and stage metadata from the backend.
	// Launch URLs are stripped during conversion; the returned catalog never
	// contains them. No caching: callers refetch per dashboard entry.
	LoadCatalog(ctx context.Context) (*models.Catalog, error)

	// ResolveLaunchURL validates that toolID exists in the catalog and then
	// resolves its launch URL from the backend. Resolution happens on every
	// open; the URL is never stored.
	ResolveLaunchURL(ctx context.Context, cat *models.Catalog, toolID string) (string, error)
}

// ClientProgressService defines the contract for the locally tracked journey
// through the framework stages. The catalog is always passed in explicitly;
// the service holds no tool data of its own.
type ClientProgressService interface {
	// GetProgress loads the stored progress record, falling back to defaults
	// when nothing is stored or the record is corrupt.
	GetProgress(ctx context.Context) (models.ProgressRecord, error)

	// MarkToolCompleted records that the tool was opened. An already-completed
	// tool is a no-op: nothing is written and the stored record is returned.
	// A tool missing from the catalog still counts as completed but cannot
	// advance the stage. When the tool's whole stage becomes complete the
	// journey advances to the next stage; the current stage only ever
	// increases. The updated record is persisted as a whole and returned.
	MarkToolCompleted(ctx context.Context, cat *models.Catalog, toolID string) (models.ProgressRecord, error)

	// NextRecommendedTool returns the first incomplete tool of the current
	// stage in catalog order, or the first tool of the following stage when
	// the current one is done, or nil when there is nothing left to suggest.
	NextRecommendedTool(ctx context.Context, cat *models.Catalog) (*models.ToolDescriptor, error)

	// StageProgress returns the completion ratio of stage n.
	StageProgress(ctx context.Context, cat *models.Catalog, n int) (models.StageProgress, error)

	// MarkIntroSeen clears the first-time flag after the framework
	// introduction has been shown.
	MarkIntroSeen(ctx context.Context) error
}
