// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the DMLabs backend.
//
// The backend is a single web-app endpoint that multiplexes operations via a
// form-encoded "action" field. The primary abstraction is [BackendAdapter],
// which decouples the service layer from that wire detail.
//
// Transport failures are wrapped around [ErrNetwork]; application-level
// failures (success=false replies) are reported as [*BackendError] carrying
// the backend's message, so callers can use [errors.Is]/[errors.As] to tell
// the two apart.
package adapter

import (
	"context"

	"github.com/paydev-web/dmlabs-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the DMLabs
// backend. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type BackendAdapter interface {
	// GetTools fetches the full tool catalog and stage metadata
	// (action=getTools). Tools still carry launch URLs at this level; the
	// catalog service drops them before anything else sees the tools.
	// Returns an error if the request fails or the backend reports failure.
	GetTools(ctx context.Context) (models.ToolsResponse, error)

	// GetToolURL resolves the launch URL of a single tool (action=getTool).
	// Called on every tool open; URLs are never cached by the adapter.
	// Returns an error if the request fails, the backend reports failure, or
	// the reply carries no URL.
	GetToolURL(ctx context.Context, toolID string) (string, error)

	// Login authenticates the user with the backend (action=login) and
	// returns the account payload on success.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Signup creates a new account on the backend (action=signup) and
	// returns the account payload on success.
	Signup(ctx context.Context, name, email, password, phone string) (models.AuthResponse, error)

	// ResetPassword asks the backend to send password reset instructions to
	// the given email (action=reset-password). Returns the backend's
	// confirmation message.
	ResetPassword(ctx context.Context, email string) (string, error)
}
