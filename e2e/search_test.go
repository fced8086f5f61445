//go:build e2e && unix

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const vaultFixture = `
[[archives]]
id = "personal"
name = "Personal"

  [[archives.groups]]
  id = "email"
  title = "Email"

  [[archives.entries]]
  id = "gmail"
  group = "email"
  [archives.entries.properties]
  title = "Gmail Account"

  [[archives.entries]]
  id = "bank"
  group = "email"
  [archives.entries.properties]
  title = "Bank Login"

[[archives]]
id = "work"
name = "Work"
`

// startWithVault writes the fixture vault and a config pointing at it
func startWithVault(t *testing.T, tf *TUITestFramework, extraConfig string) {
	t.Helper()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.WriteFile("vault.toml", vaultFixture)
	require.NoError(t, err)

	cfg := "vault_path = \"vault.toml\"\nlog_file = \"vaultsearch.log\"\n" + extraConfig
	_, err = tf.WriteFile("config.toml", cfg)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-config", filepath.Join(workspace, "config.toml")))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Personal"), "Should list archives")
}

func TestSearchOverlaySelectsEntry(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithVault(t, tf, "")

	require.NoError(t, tf.OpenSearch())
	require.True(t, tf.SeePlain("Search entries"), "Overlay should show the input placeholder")

	require.NoError(t, tf.Type("gmail"))
	require.True(t, tf.SeePlain("Account in Email"), "Should list the matching entry with its group")

	require.NoError(t, tf.Enter())
	if !tf.SeePlain("Selected: Gmail Account") {
		tf.DumpTailOnFail(t, "select-failure", 4096)
		t.Fatal("Status line should report the selected entry")
	}
}

func TestSearchOverlayNoMatches(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithVault(t, tf, "")

	require.NoError(t, tf.OpenSearch())
	require.NoError(t, tf.Type("zzz"))
	require.True(t, tf.SeePlain("No matches"), "Should report an empty result")

	require.NoError(t, tf.Esc())
	require.NoError(t, tf.Quit())
}

func TestSearchOverlayGermanLabels(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithVault(t, tf, "\n[ui]\nlanguage = \"de\"\n")

	require.NoError(t, tf.OpenSearch())
	require.NoError(t, tf.Type("mail"))
	require.True(t, tf.SeePlain("Einträge"), "Section headings should be translated")
}
