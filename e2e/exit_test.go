//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startTalk(t)

	require.NoError(t, tf.Quit())
	if err := tf.Wait(3 * time.Second); err != nil {
		tf.DumpTailOnFail(t, "exit", 4096)
		t.Fatalf("q should exit cleanly: %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	deck, err := tf.WriteDeck("talk.md", talkDeck)
	require.NoError(t, err)

	out, err := tf.RunCLI("check", deck)
	require.NoError(t, err, out)
	require.Contains(t, out, "  2. Middle (slide-02)")
}
