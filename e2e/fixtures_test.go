//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
)

const talkDeck = `---
title: E2E Talk
duration: 5m
---
# Opening
first slide body
<!-- notes
greet the room
-->
---
# Middle
second slide body
---
# Closing
thanks
`

// CreateTestWorkspace creates an isolated workspace that also serves as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteDeck writes a deck file into the workspace
func (tf *TUITestFramework) WriteDeck(name, content string) (string, error) {
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(content), 0o644)
}

// RunCLI runs a non-interactive deckgrip command with the workspace environment
func (tf *TUITestFramework) RunCLI(args ...string) (string, error) {
	cmd := exec.Command(binPath, args...)
	cmd.Env = tf.env()
	out, err := cmd.CombinedOutput()
	return string(out), err
}
