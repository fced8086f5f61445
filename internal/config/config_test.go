package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultsearch/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"), nil)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMissing(t *testing.T) {
	svc := NewConfigServiceAt("", nil)
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path, nil)

	cfg := DefaultConfig()
	cfg.VaultPath = "/tmp/vault.toml"
	cfg.Search.CaseSensitive = false
	cfg.Search.ResetOnClose = true
	cfg.UISettings.Language = "de"
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
vault_path = "secrets.toml"

[search]
case_sensitive = false
max_results = -3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfigServiceAt(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "secrets.toml", cfg.VaultPath)
	assert.False(t, cfg.Search.CaseSensitive)
	assert.False(t, cfg.Search.ResetOnClose)
	assert.Equal(t, 0, cfg.Search.MaxResults)
	assert.Equal(t, domain.PropertyTitle, cfg.Search.PropertyKey)
	assert.Equal(t, "ctrl+f", cfg.UISettings.OpenKey)
	assert.Equal(t, "en", cfg.UISettings.Language)
}

func TestLoadRejectsInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search\n"), 0o644))

	_, err := NewConfigServiceAt(path, nil).Load()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDefaultHighlightIsCaseSensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("vault_path = \"v.toml\"\n"), 0o644))

	cfg, err := NewConfigServiceAt(path, nil).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Search.CaseSensitive)
	assert.True(t, DefaultConfig().Search.CaseSensitive)
}
