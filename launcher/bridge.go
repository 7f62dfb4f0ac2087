// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package launcher

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/jongio/edge-launcher-core/wslutil"
)

// pidMarker prefixes the sentinel line the bridge script emits on stderr.
// Scanning for it is the only reliable way to learn the Windows PID of a
// process created from inside WSL.
const pidMarker = "EDGE_LAUNCHER"

var pidPattern = regexp.MustCompile(pidMarker + `\s+debug me @ (\d+)`)

// startBridged spawns the browser on the Windows side of the WSL boundary.
// A shell runs `wmic process call create`, extracts the ProcessId from
// wmic's textual reply, and re-emits it on stderr behind the sentinel
// marker where the pidScanner picks it up.
func (l *Launcher) startBridged(url string, flags []string) error {
	exe := l.bridge.ResolveBridgedPath(l.variant.InstallDirs...)
	script := bridgeScript(l.bridge, exe, url, l.dataDir, flags)

	scanner := newPIDScanner(func(pid int) {
		recordPIDRecovery(statusRecovered)
		l.log.Debug("recovered remote pid", "pid", pid)
	})

	cmd := exec.Command("sh", "-c", script)
	cmd.Stderr = scanner

	l.log.WithOperation("start").Debug("spawning bridged browser", "executable", exe, "script", script)
	if err := cmd.Start(); err != nil {
		recordLaunch(l.variant.Name, modeBridged, statusFailed)
		return err
	}

	l.mu.Lock()
	l.cmd = cmd
	l.bridged = true
	l.scanner = scanner
	l.mu.Unlock()

	go func() { _ = cmd.Wait() }()
	recordLaunch(l.variant.Name, modeBridged, statusStarted)
	return nil
}

// bridgeScript builds the shell script for one bridged launch. Translation
// failures fall back to the untranslated path: the launch then fails at
// spawn with a concrete error instead of failing here.
func bridgeScript(b *wslutil.Bridge, exe, url, dataDir string, flags []string) string {
	winDataDir, err := b.WindowsPath(dataDir)
	if err != nil {
		winDataDir = dataDir
	}
	exeDir := filepath.Dir(exe)
	winExeDir, err := b.WindowsPath(exeDir)
	if err != nil {
		winExeDir = exeDir
	}

	parts := []string{
		escapeShellMeta(winExeDir) + `\` + filepath.Base(exe),
		url,
		"--user-data-dir=" + winDataDir,
	}
	parts = append(parts, flags...)
	commandLine := strings.Join(parts, " ")

	return fmt.Sprintf(
		`pid=$(wmic.exe process call create "%s" | grep ProcessId | tr -dc 0-9); echo "%s debug me @ $pid" 1>&2`,
		commandLine, pidMarker,
	)
}

// escapeShellMeta backslash-escapes the characters in translated Windows
// paths that would otherwise be interpreted by the shell: spaces and the
// parentheses of "Program Files (x86)".
func escapeShellMeta(s string) string {
	return strings.NewReplacer(" ", `\ `, "(", `\(`, ")", `\)`).Replace(s)
}

// killBridged forcefully deletes the Windows process by PID. The wmic
// where-clause filters to a still-running process: when the browser
// already exited the command simply matches nothing.
func killBridged(pid int) error {
	script := fmt.Sprintf(`wmic.exe process where "ProcessId=%d" delete`, pid)
	return exec.Command("sh", "-c", script).Run()
}

// pidScanner recovers the remote PID from the bridge shell's stderr. It
// accumulates raw chunks and matches the sentinel pattern only against
// complete newline-terminated lines, so a PID whose digits are split
// across writes is always parsed whole. The script terminates the
// sentinel with a newline via echo.
type pidScanner struct {
	mu    sync.Mutex
	buf   []byte
	pid   int
	onPID func(int)
}

func newPIDScanner(onPID func(int)) *pidScanner {
	return &pidScanner{onPID: onPID}
}

// Write implements io.Writer. It never fails: stderr noise around the
// sentinel (wmic banners, locale warnings) is buffered and ignored.
func (s *pidScanner) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pid != 0 {
		return len(p), nil
	}
	s.buf = append(s.buf, p...)
	for {
		i := bytes.IndexByte(s.buf, '\n')
		if i < 0 {
			return len(p), nil
		}
		line := s.buf[:i]
		s.buf = s.buf[i+1:]

		m := pidPattern.FindSubmatch(line)
		if m == nil {
			continue
		}
		pid, err := strconv.Atoi(string(m[1]))
		if err != nil || pid <= 0 {
			continue
		}
		s.pid = pid
		s.buf = nil
		if s.onPID != nil {
			s.onPID(pid)
		}
		return len(p), nil
	}
}

// PID returns the recovered remote PID, or 0 if the sentinel has not
// matched. It never blocks waiting for a match.
func (s *pidScanner) PID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pid
}
