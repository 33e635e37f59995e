//go:build e2e && unix

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "deckgrip_e2e"

const (
	KeyEnter = "\r"
	KeyCtrlS = "\x13"
	KeySpace = " "
	KeyRight = "\x1b[C"
	KeyLeft  = "\x1b[D"
	KeyQuit  = "q"
)

// terminal control sequences and carriage returns, removed before matching
var ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07]*\x07|\x1b[()][A-Za-z]|\x1b[=>]|\r`)

// TUITestFramework drives one deckgrip process through a pseudo terminal
type TUITestFramework struct {
	t         *testing.T
	cmd       *exec.Cmd
	pty       *os.File
	workspace string
	exited    chan error

	mu  sync.Mutex
	out bytes.Buffer
}

// NewTUITest creates a driver for t
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t}
}

// env isolates the process config and state inside the workspace
func (tf *TUITestFramework) env() []string {
	return append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
	)
}

// StartApp launches deckgrip on a 120x40 terminal
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Env = tf.env()

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start deckgrip: %w", err)
	}
	tf.pty = f
	tf.exited = make(chan error, 1)

	go tf.capture(f)
	cmd := tf.cmd
	go func() { tf.exited <- cmd.Wait() }()
	return nil
}

func (tf *TUITestFramework) capture(f *os.File) {
	chunk := make([]byte, 4096)
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			tf.mu.Lock()
			tf.out.Write(chunk[:n])
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// SendKeys writes raw input to the terminal
func (tf *TUITestFramework) SendKeys(keys string) error {
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// SendCtrlS saves the note editor
func (tf *TUITestFramework) SendCtrlS() error { return tf.SendKeys(KeyCtrlS) }

func (tf *TUITestFramework) Next() error     { return tf.SendKeys(KeyRight) }
func (tf *TUITestFramework) Previous() error { return tf.SendKeys(KeyLeft) }
func (tf *TUITestFramework) Enter() error    { return tf.SendKeys(KeyEnter) }
func (tf *TUITestFramework) Quit() error     { return tf.SendKeys(KeyQuit) }

// Wait blocks until the process exits or timeout passes
func (tf *TUITestFramework) Wait(timeout time.Duration) error {
	select {
	case err := <-tf.exited:
		tf.exited <- err
		return err
	case <-time.After(timeout):
		return errors.New("deckgrip still running")
	}
}

// SeePlain waits up to three seconds for text in the plain output
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// WaitForStatusMessage waits for message on the status line
func (tf *TUITestFramework) WaitForStatusMessage(message string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(message, timeout)
}

// OutputContainsPlain polls the plain output for text
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(tf.SnapshotPlain(), text) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// SnapshotPlain returns everything printed so far with control sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	tf.mu.Lock()
	raw := tf.out.String()
	tf.mu.Unlock()
	return ansiRe.ReplaceAllString(raw, "")
}

// DumpTailOnFail keeps the last n bytes of plain output next to the test logs
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0o644)
	t.Logf("output tail saved to %s", p)
}

// Cleanup hangs up the terminal and kills the process if it is still alive
func (tf *TUITestFramework) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		if tf.exited != nil {
			<-tf.exited
		}
		tf.cmd = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}
