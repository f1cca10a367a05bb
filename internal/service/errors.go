package service

import "errors"

var (
	// ErrCatalogNotLoaded is returned when an operation requiring the tool
	// catalog is called before one has been loaded.
	ErrCatalogNotLoaded = errors.New("tool catalog is not loaded")

	// ErrToolNotFound is returned when a tool id is not present in the
	// loaded catalog. This is local validation, not a backend failure.
	ErrToolNotFound = errors.New("tool not found in catalog")
)
