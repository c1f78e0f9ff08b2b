//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

// binPath is set by TestMain once the binary is built
var binPath string

const (
	KeyCtrlC     = "\x03"
	KeyTab       = "\t"
	KeyEsc       = "\x1b"
	KeyBackspace = "\x7f"
	KeyRight     = "l"
	KeyQuit      = "q"
	KeyReshuffle = "r"
)

const waitTimeout = 3 * time.Second

// ansiRe strips CSI and OSC sequences, charset switches and carriage returns
var ansiRe = regexp.MustCompile(
	`\x1b\[[0-9;?<]*[ -/]*[@-~]|\x1b\][^\x07]*\x07|\x1b[()][A-Za-z]|\x1b[=>]|\r`,
)

// screenBuffer collects everything divgrid writes to the terminal
type screenBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *screenBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *screenBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// session runs divgrid in a pseudo-terminal
type session struct {
	t      *testing.T
	cmd    *exec.Cmd
	pty    *os.File
	out    screenBuffer
	exited bool
}

// startSession launches divgrid with a 120x40 terminal and an isolated
// home directory, then waits for the first frame
func startSession(t *testing.T, args ...string) *session {
	t.Helper()
	home := t.TempDir()

	cmd := exec.Command(binPath, args...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"HOME="+home,
		"XDG_CONFIG_HOME="+home,
	)
	cmd.Dir = home // divgrid.log lands here

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 120})
	require.NoError(t, err, "starting divgrid in a pty")

	s := &session{t: t, cmd: cmd, pty: f}
	go func() { _, _ = io.Copy(&s.out, f) }()
	t.Cleanup(s.close)

	require.True(t, s.waitFor(0, "Numbers up to:"), "first frame never rendered")
	return s
}

func (s *session) send(keys string) {
	s.t.Helper()
	_, err := s.pty.Write([]byte(keys))
	require.NoError(s.t, err)
}

// hover reports pointer motion to the zero-based cell (x, y) in SGR encoding
func (s *session) hover(x, y int) {
	s.t.Helper()
	s.send(fmt.Sprintf("\x1b[<35;%d;%dM", x+1, y+1))
}

// mark returns the current output length; waitFor only looks past it
func (s *session) mark() int {
	return len(s.out.String())
}

// waitFor polls until text shows up in the plain output written after mark
func (s *session) waitFor(mark int, text string) bool {
	s.t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for {
		raw := s.out.String()
		if mark > len(raw) {
			mark = len(raw)
		}
		if strings.Contains(ansiRe.ReplaceAllString(raw[mark:], ""), text) {
			return true
		}
		if time.Now().After(deadline) {
			s.dumpTail(text)
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// waitExit expects divgrid to terminate cleanly on its own
func (s *session) waitExit() {
	s.t.Helper()
	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()

	select {
	case err := <-done:
		s.exited = true
		require.NoError(s.t, err, "divgrid should exit cleanly")
	case <-time.After(waitTimeout):
		s.dumpTail("exit")
		s.t.Fatal("divgrid did not exit")
	}
}

// dumpTail saves the last few KiB of plain output next to the test's temp files
func (s *session) dumpTail(name string) {
	tail := ansiRe.ReplaceAllString(s.out.String(), "")
	if len(tail) > 4096 {
		tail = tail[len(tail)-4096:]
	}
	p := filepath.Join(s.t.TempDir(), "tail.txt")
	_ = os.WriteFile(p, []byte(tail), 0o644)
	s.t.Logf("waiting for %q; output tail saved to %s", name, p)
}

func (s *session) close() {
	// Closing the pty delivers SIGHUP to divgrid
	_ = s.pty.Close()
	if !s.exited && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
		_, _ = s.cmd.Process.Wait()
	}
}
