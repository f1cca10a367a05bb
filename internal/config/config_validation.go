// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the meaningful checks live on the derived
// [ClientConfig] view, which is what the runtime actually consumes.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BackendURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.Workers.ExpiryCheckInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
