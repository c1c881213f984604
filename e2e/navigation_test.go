//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypingAPageNumber(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("WELCOME TO TELETEXT"), "Should show the index page")

	tf.GoTo("300")
	require.True(t, tf.SeePlain("LATEST RESULTS"), "Should show the sport page")

	tf.Quit()
}

func TestColoredButtonsAndHistory(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	// Red on the index goes to news
	tf.Red()
	require.True(t, tf.SeePlain("TOP STORIES"), "Red should open the news page")

	tf.GoTo("300")
	require.True(t, tf.SeePlain("LATEST RESULTS"), "Should open the sport page")

	tf.ClearOutput()
	tf.Back()
	require.True(t, tf.SeePlain("TOP STORIES"), "Back should return to the news page")

	tf.ClearOutput()
	tf.Forward()
	require.True(t, tf.SeePlain("LATEST RESULTS"), "Forward should reopen the sport page")

	tf.Quit()
}

func TestUnknownPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.GoTo("899")
	require.True(t, tf.SeePlain("P899 unavailable"), "Should report the missing page")

	tf.Quit()
}

func TestStartPageFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--page", "300"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("LATEST RESULTS"), "Should open on the sport page")

	tf.Quit()
}
