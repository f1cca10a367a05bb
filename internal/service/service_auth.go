package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paydev-web/dmlabs-client/internal/adapter"
	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/store"
	"github.com/paydev-web/dmlabs-client/models"
)

type authService struct {
	localStore *store.ClientStorages
	adapter    adapter.BackendAdapter
	logger     *logger.Logger
	now        func() time.Time
}

// NewClientAuthService constructs a [ClientAuthService] over the local store
// and the backend adapter.
func NewClientAuthService(localStore *store.ClientStorages, backend adapter.BackendAdapter, log *logger.Logger) ClientAuthService {
	return &authService{localStore: localStore, adapter: backend, logger: log, now: time.Now}
}

// Login authenticates against the backend and persists the session. The
// effective status is computed at login time; stored progress is not touched.
func (a *authService) Login(ctx context.Context, email, password string) (models.UserSession, error) {
	log := logger.FromContext(ctx)

	resp, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.UserSession{}, fmt.Errorf("login: %w", err)
	}

	session := a.buildSession(resp, email)

	if err = a.localStore.Sessions.Save(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error saving session")
		return models.UserSession{}, err
	}

	log.Info().Str("func", "*authService.Login").Str("userId", session.UserID).Msg("logged in")
	return session, nil
}

// Signup creates the account, persists a fresh session and wipes any stored
// progress. The wipe is deliberate and asymmetric with Login: a brand-new
// account starts the journey over, a returning login keeps it.
func (a *authService) Signup(ctx context.Context, name, email, password, phone string) (models.UserSession, error) {
	log := logger.FromContext(ctx)

	resp, err := a.adapter.Signup(ctx, name, email, password, phone)
	if err != nil {
		return models.UserSession{}, fmt.Errorf("signup: %w", err)
	}

	session := a.buildSession(resp, email)

	if err = a.localStore.Sessions.Save(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("error saving session")
		return models.UserSession{}, err
	}

	if err = a.localStore.Progress.Delete(ctx); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		log.Err(err).Str("func", "*authService.Signup").Msg("error wiping progress for new account")
		return models.UserSession{}, err
	}

	log.Info().Str("func", "*authService.Signup").Str("userId", session.UserID).Msg("account created")
	return session, nil
}

// Logout deletes the session only. Progress is device-scoped and survives.
func (a *authService) Logout(ctx context.Context) error {
	return a.localStore.Sessions.Delete(ctx)
}

// ResetPassword forwards the request to the backend and surfaces its
// confirmation message.
func (a *authService) ResetPassword(ctx context.Context, email string) (string, error) {
	msg, err := a.adapter.ResetPassword(ctx, email)
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return msg, nil
}

func (a *authService) buildSession(resp models.AuthResponse, email string) models.UserSession {
	now := a.now()

	session := models.UserSession{
		UserID:     resp.UserID,
		Name:       resp.Name,
		Email:      email,
		Plan:       resp.Plan,
		ExpiryDate: resp.ExpiryDate,
		LastLogin:  now,
	}
	if session.Plan == "" {
		session.Plan = models.PlanFree
	}
	session.Status = ResolveStatus(&session, now)

	return session
}
