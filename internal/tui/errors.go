// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/paydev-web/dmlabs-client/internal/adapter"
	"github.com/paydev-web/dmlabs-client/internal/service"
)

// humanizeError turns transport and validation errors into messages fit for
// the screen. Backend-reported failures already carry a human message and
// pass through as-is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var backendErr *adapter.BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Message
	}

	if errors.Is(err, service.ErrToolNotFound) {
		return "This tool is no longer in the catalog"
	}
	if errors.Is(err, service.ErrCatalogNotLoaded) {
		return "The tool catalog has not been loaded yet"
	}

	if errors.Is(err, adapter.ErrNetwork) {
		return "No connection to the DMLabs backend. Check your network and retry."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No connection to the DMLabs backend. Check your network and retry."
	}

	return err.Error()
}
