//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.OpenHelp()
	require.True(t, tf.SeePlain("Teletext Help"), "Should show help in pager")
	require.True(t, tf.SeePlain("Page Numbers"), "Should list the page number keys")

	// Quit pager and ensure TUI again
	tf.ClearOutput()
	tf.SendKeys("q")
	require.True(t, tf.SeePlain("WELCOME TO TELETEXT"), "Should return to the page after the pager")

	tf.Quit()
}

func TestArticlePager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--page", "201"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.OpenChain()
	require.True(t, tf.SeePlain("201-2"), "Should show the continuation pages in the pager")

	tf.SendKeys("q")
	tf.Quit()
}
