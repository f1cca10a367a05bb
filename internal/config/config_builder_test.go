package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Backend: Backend{URL: "https://backend.example.com/exec"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "https://backend.example.com/exec", cfg.Backend.URL)
}

// TestBuild_FirstNonZeroWins verifies the merge priority: a field already set
// by an earlier source is not overridden by a later one.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Backend: Backend{RequestTimeout: 10 * time.Second}},
		&StructuredConfig{Backend: Backend{RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
}

// TestWithJSON_UsesPathFromEarlierSources verifies that withJSON picks up the
// config file path discovered by env/flags sources.
func TestWithJSON_UsesPathFromEarlierSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "/tmp/from-json.db"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-json.db", cfg.Storage.DB.DSN)
}

// TestWithJSON_NoPath verifies that withJSON is a no-op when no source
// specified a file path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestClientConfigValidate covers the required-field checks of the client view.
func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{
				BackendURL:     "https://backend.example.com/exec",
				RequestTimeout: 15 * time.Second,
			},
			Storage: ClientStorage{DB: ClientDB{DSN: "/tmp/dmlabs.db"}},
			Workers: ClientWorkers{ExpiryCheckInterval: time.Hour},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("empty dsn", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("in-memory dsn rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ":memory:"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing backend url", func(t *testing.T) {
		cfg := valid()
		cfg.Adapter.BackendURL = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidBackendConfigs)
	})

	t.Run("zero timeout", func(t *testing.T) {
		cfg := valid()
		cfg.Adapter.RequestTimeout = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidBackendConfigs)
	})

	t.Run("zero expiry interval", func(t *testing.T) {
		cfg := valid()
		cfg.Workers.ExpiryCheckInterval = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
	})
}
