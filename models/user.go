package models

import "time"

// Plan is the subscription tier a user has purchased.
type Plan string

// Status is the effective account state derived from the plan and the expiry
// date. Unlike Plan it can be Expired.
type Status string

const (
	PlanFree    Plan = "Free"
	PlanPremium Plan = "Premium"

	StatusFree    Status = "Free"
	StatusPremium Status = "Premium"
	StatusExpired Status = "Expired"
)

// expiryLayouts are the date formats the backend is known to emit for
// expiryDate. RFC3339 comes from newer backend deployments, the bare date
// from the original spreadsheet export.
var expiryLayouts = []string{time.RFC3339, "2006-01-02"}

// UserSession represents the locally persisted account record created on a
// successful login or signup. It is stored as a single JSON blob under a
// fixed key in the local database.
//
// Status is a cache of the last derived value, kept only so the UI can render
// without recomputing; it must always be recomputed from (Plan, ExpiryDate,
// now) before any access decision.
type UserSession struct {
	// UserID is the backend-assigned account identifier.
	UserID string `json:"userId"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the login email address.
	Email string `json:"email"`

	// Plan is the subscription tier reported by the backend.
	Plan Plan `json:"plan"`

	// Status is the cached effective status. Not a source of truth.
	Status Status `json:"status"`

	// ExpiryDate is the premium expiry date exactly as the backend sent it.
	// Empty for accounts without an expiry. Parsed lazily via ExpiryTime.
	ExpiryDate string `json:"expiryDate,omitempty"`

	// LastLogin is the timestamp of the most recent successful login.
	LastLogin time.Time `json:"lastLogin"`
}

// ExpiryTime parses ExpiryDate and returns the expiry instant, or nil when no
// expiry is set or the value does not parse. An unparseable date never makes
// an account expired.
func (u *UserSession) ExpiryTime() *time.Time {
	if u == nil || u.ExpiryDate == "" {
		return nil
	}

	for _, layout := range expiryLayouts {
		if ts, err := time.Parse(layout, u.ExpiryDate); err == nil {
			return &ts
		}
	}

	return nil
}
