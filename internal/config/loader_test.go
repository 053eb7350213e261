package config

import (
	"errors"
	"os"
	"testing"

	"github.com/Cyclone1070/vlf/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

const testConfigPath = "/home/user/.config/vlf/config.json"

func loaderWith(configJSON string) *Loader {
	return NewLoaderWithFS(&MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(configJSON),
		},
	})
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), cfg.Policy.BatchSize)
	require.NotNil(t, cfg.Policy.Threshold)
	assert.Equal(t, int64(10_000_000), *cfg.Policy.Threshold)
	assert.Equal(t, policy.ApplicationAsk, cfg.Policy.Application)
	assert.Equal(t, "less", cfg.Commands.Viewer)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	configJSON := `{
		"policy": {"batch_size": 4096, "threshold": 8192, "application": "dont-ask", "forbidden_modes": ["pdf-mode"]},
		"modes": {"table": [{"pattern": "\\.log\\'", "mode": "log-mode"}], "case_fold_fallback": false, "case_sensitive": false},
		"commands": {"editor": "nano", "viewer": "most", "exempt": ["visit-tags-table"]},
		"listing": {"include_ignored": true, "max_entries": 10},
		"ui": {"color_primary": "99"}
	}`

	cfg, err := loaderWith(configJSON).Load()

	require.NoError(t, err)
	assert.Equal(t, int64(4096), cfg.Policy.BatchSize)
	assert.Equal(t, int64(8192), *cfg.Policy.Threshold)
	assert.Equal(t, policy.ApplicationDontAsk, cfg.Policy.Application)
	assert.Equal(t, []string{"pdf-mode"}, cfg.Policy.ForbiddenModes)
	assert.Len(t, cfg.Modes.Table, 1)
	assert.False(t, cfg.Modes.CaseFoldFallback)
	assert.Equal(t, "nano", cfg.Commands.Editor)
	assert.Equal(t, "most", cfg.Commands.Viewer)
	assert.Equal(t, []string{"visit-tags-table"}, cfg.Commands.Exempt)
	assert.True(t, cfg.Listing.IncludeIgnored)
	assert.Equal(t, 10, cfg.Listing.MaxEntries)
	assert.Equal(t, "99", cfg.UI.ColorPrimary)
	assert.False(t, cfg.ResolveOptions().CaseSensitive)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	cfg, err := loaderWith(`{"policy": {"application": "always"}}`).Load()

	require.NoError(t, err)
	assert.Equal(t, policy.ApplicationAlways, cfg.Policy.Application) // Overridden
	assert.Equal(t, int64(1_000_000), cfg.Policy.BatchSize)          // Default
	assert.Contains(t, cfg.Policy.ForbiddenModes, "tar-mode")         // Default list
}

func TestLoad_NullThreshold_DisablesThreshold(t *testing.T) {
	cfg, err := loaderWith(`{"policy": {"threshold": null}}`).Load()

	require.NoError(t, err)
	assert.Nil(t, cfg.Policy.Threshold)
	assert.Nil(t, cfg.PolicyConfig().Threshold)
}

func TestLoad_EmptyForbiddenModes_ReplacesDefault(t *testing.T) {
	cfg, err := loaderWith(`{"policy": {"forbidden_modes": []}}`).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Policy.ForbiddenModes)
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	fs := &MockFileSystem{
		Files: map[string][]byte{"/etc/vlf.json": []byte(`{"policy": {"batch_size": 7}}`)},
	}

	cfg, err := NewLoaderWithFS(fs).LoadFile("/etc/vlf.json")

	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Policy.BatchSize)
}

// --- UNHAPPY PATH TESTS ---

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	cfg, err := loaderWith(`{invalid json`).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoad_UnknownApplication_ReturnsError(t *testing.T) {
	cfg, err := loaderWith(`{"policy": {"application": "sometimes"}}`).Load()

	assert.Nil(t, cfg)
	var ue *policy.UnknownApplicationError
	assert.True(t, errors.As(err, &ue))
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{HomeDirErr: errors.New("homeless")}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, policy.ApplicationAsk, cfg.Policy.Application)
}

func TestLoadFile_MissingFile_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{Files: map[string][]byte{}}

	cfg, err := NewLoaderWithFS(fs).LoadFile("/nope.json")

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ZeroBatchSize_Rejected(t *testing.T) {
	cfg, err := loaderWith(`{"policy": {"batch_size": 0}}`).Load()

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "validation failed")
	assert.ErrorContains(t, err, "policy.batch_size")
}

func TestLoad_BadModePattern_Rejected(t *testing.T) {
	cfg, err := loaderWith(`{"modes": {"table": [{"pattern": "(", "mode": "x"}]}}`).Load()

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "modes.table")
}

func TestLoad_UnknownFields_Ignored(t *testing.T) {
	cfg, err := loaderWith(`{"policy": {"batch_size": 100}, "unknown_field": "ignored"}`).Load()

	require.NoError(t, err)
	assert.Equal(t, int64(100), cfg.Policy.BatchSize)
}

// --- DEFAULT CONFIG TESTS ---

func TestDefaultConfig_AllFieldsInitialized(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg.Policy.ForbiddenModes)
	assert.NotNil(t, cfg.Commands.Exempt)
	assert.Greater(t, cfg.Policy.BatchSize, int64(0))
	assert.NoError(t, cfg.PolicyConfig().Validate())

	table, err := cfg.ModeTable()
	require.NoError(t, err)
	assert.Greater(t, table.Len(), 0)
}
