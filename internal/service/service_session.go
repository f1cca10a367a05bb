// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/store"
	"github.com/paydev-web/dmlabs-client/models"
)

// expiryWarningDays is how far ahead of the premium expiry the dashboard
// starts warning the user.
const expiryWarningDays = 7

// ResolveStatus derives the effective account status from the plan and the
// expiry date at the given instant. The stored Status field is only a cache;
// this function is the single source of truth for access decisions.
//
// An expiry strictly in the past makes the account Expired regardless of
// plan. An unparseable or absent expiry never expires anyone.
func ResolveStatus(user *models.UserSession, now time.Time) models.Status {
	if user == nil {
		return models.StatusFree
	}

	if ts := user.ExpiryTime(); ts != nil && ts.Before(now) {
		return models.StatusExpired
	}

	if user.Plan == models.PlanPremium && user.Status != models.StatusExpired {
		return models.StatusPremium
	}

	if user.Status != "" {
		return user.Status
	}

	return models.StatusFree
}

// HasPremiumAccess reports whether the session grants premium access right
// now.
func HasPremiumAccess(user *models.UserSession, now time.Time) bool {
	return ResolveStatus(user, now) == models.StatusPremium
}

// ExpiryNoticeFor summarizes the premium expiry state for banners: expired,
// expiring within the warning window, or neither.
func ExpiryNoticeFor(user *models.UserSession, now time.Time) models.ExpiryNotice {
	if user == nil {
		return models.ExpiryNotice{}
	}

	ts := user.ExpiryTime()
	if ts == nil {
		return models.ExpiryNotice{}
	}

	if ts.Before(now) {
		return models.ExpiryNotice{Expired: true}
	}

	days := int(math.Ceil(ts.Sub(now).Hours() / 24))
	return models.ExpiryNotice{
		ExpiringSoon: days > 0 && days <= expiryWarningDays,
		DaysLeft:     days,
	}
}

type sessionService struct {
	localStore *store.ClientStorages
	logger     *logger.Logger
	now        func() time.Time
}

// NewClientSessionService constructs a [ClientSessionService] over the local
// store.
func NewClientSessionService(localStore *store.ClientStorages, log *logger.Logger) ClientSessionService {
	return &sessionService{localStore: localStore, logger: log, now: time.Now}
}

// CheckAuth loads the stored session, recomputes its status and lazily
// persists the session when the cached status went stale. A missing or
// corrupt session reads as "not logged in" (nil, nil).
func (s *sessionService) CheckAuth(ctx context.Context) (*models.UserSession, error) {
	log := logger.FromContext(ctx)

	session, err := s.localStore.Sessions.Get(ctx)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	status := ResolveStatus(&session, s.now())
	if status != session.Status {
		log.Info().
			Str("func", "*sessionService.CheckAuth").
			Str("from", string(session.Status)).
			Str("to", string(status)).
			Msg("session status changed, persisting")
		session.Status = status
		if err = s.localStore.Sessions.Save(ctx, session); err != nil {
			// the derived status is still correct for this run
			log.Err(err).Str("func", "*sessionService.CheckAuth").Msg("error persisting refreshed session")
		}
	}

	return &session, nil
}
