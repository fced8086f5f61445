//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithVault(t, tf, "")

	initialOutput := tf.Snapshot()

	// Open help pager (? key)
	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.WaitFor(func(s string) bool {
		return s != initialOutput
	}, 2*time.Second), "Help pager should open and change TUI state")
	require.True(t, tf.SeePlain("vaultsearch keys"), "Pager should show the key list")

	// q leaves the pager, not the app
	require.NoError(t, tf.Quit())
	require.True(t, tf.SeePlain("Archives"), "Should return to main TUI after closing help pager")
}
