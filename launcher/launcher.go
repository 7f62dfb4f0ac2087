// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package launcher

import (
	"os"
	"os/exec"
	"sync"

	"github.com/jongio/edge-launcher-core/logutil"
	"github.com/jongio/edge-launcher-core/procutil"
	"github.com/jongio/edge-launcher-core/wslutil"
)

// BaseLauncher is the slice of the host's base-launcher decorator this
// package consumes: allocation of the per-launch profile directory. Process
// supervision and the _start/kill event plumbing stay on the host side.
type BaseLauncher interface {
	TempDir() string
}

// Launcher starts and kills one browser instance for one variant. A
// Launcher is single-use: the host constructs a fresh one per test run.
type Launcher struct {
	variant Variant
	command string
	args    Args
	dataDir string
	log     *logutil.ComponentLogger

	bridge  *wslutil.Bridge
	isWSL   func() bool
	display func() string

	// remoteKill is swapped out by tests; production wires killBridged.
	remoteKill func(pid int) error

	mu      sync.Mutex
	cmd     *exec.Cmd
	bridged bool
	scanner *pidScanner
}

// New builds a launcher for the variant. The executable comes from the
// variant's env-var override when set, otherwise from the snapshot. The
// profile directory comes from args.EdgeDataDir, falling back to the base
// launcher's temp allocation.
func New(variant Variant, snap Snapshot, base BaseLauncher, args Args) *Launcher {
	dataDir := args.EdgeDataDir
	if dataDir == "" && base != nil {
		dataDir = base.TempDir()
	}
	return &Launcher{
		variant:    variant,
		command:    ResolveCommand(variant, snap),
		args:       args,
		dataDir:    dataDir,
		log:        logutil.NewLogger("launcher").WithVariant(variant.Name),
		bridge:     wslutil.New(),
		isWSL:      wslutil.IsWSL,
		display:    func() string { return os.Getenv("DISPLAY") },
		remoteKill: killBridged,
	}
}

// Variant returns the variant this launcher was built for.
func (l *Launcher) Variant() Variant { return l.variant }

// Command returns the resolved executable, or "" when nothing resolved.
func (l *Launcher) Command() string { return l.command }

// Bridged reports whether the last Start went through the WSL bridge.
func (l *Launcher) Bridged() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bridged
}

// RemotePID returns the Windows PID recovered for a bridged launch, or 0
// while (or if) recovery has not happened.
func (l *Launcher) RemotePID() int {
	l.mu.Lock()
	scanner := l.scanner
	l.mu.Unlock()
	if scanner == nil {
		return 0
	}
	return scanner.PID()
}

// Start launches the browser pointed at url. Spawn failures come back
// verbatim from the OS; resolution and translation problems never surface
// here, they only steer which spawn is attempted.
func (l *Launcher) Start(url string) error {
	wsl := l.isWSL()
	flags := l.variant.BuildFlags(l.args.Flags, wsl)

	if wsl && l.needsBridge() {
		return l.startBridged(url, flags)
	}
	return l.startNative(url, flags)
}

// needsBridge decides the WSL launch mode. The bridge is used when no
// native Linux browser exists, and also when one exists but a windowed
// launch would fail for want of a display server.
func (l *Launcher) needsBridge() bool {
	if l.command == "" {
		return true
	}
	return !l.variant.Headless && l.display() == ""
}

func (l *Launcher) startNative(url string, flags []string) error {
	argv := append([]string{url, "--user-data-dir=" + l.dataDir}, flags...)
	cmd := exec.Command(l.command, argv...)

	l.log.WithOperation("start").Debug("spawning native browser", "command", l.command, "args", argv)
	if err := cmd.Start(); err != nil {
		recordLaunch(l.variant.Name, modeNative, statusFailed)
		return err
	}

	l.mu.Lock()
	l.cmd = cmd
	l.bridged = false
	l.mu.Unlock()

	go func() { _ = cmd.Wait() }()
	recordLaunch(l.variant.Name, modeNative, statusStarted)
	return nil
}

// Kill terminates whatever Start produced and always invokes done on a
// fresh goroutine. Bridged launches are killed by remote PID; if the PID
// was never recovered the kill is a no-op. Native launches get a direct
// forceful signal when still running. Every termination failure is
// swallowed: by the time the host kills us the process may well be gone.
func (l *Launcher) Kill(done func()) {
	l.mu.Lock()
	cmd, bridged, scanner := l.cmd, l.bridged, l.scanner
	l.mu.Unlock()

	log := l.log.WithOperation("kill")
	switch {
	case bridged:
		pid := 0
		if scanner != nil {
			pid = scanner.PID()
		}
		if pid > 0 {
			if err := l.remoteKill(pid); err != nil {
				log.Debug("remote kill failed, process likely exited", "pid", pid, "error", err)
			}
		} else {
			recordPIDRecovery(statusMissing)
			log.Debug("no remote pid recovered, kill is a no-op")
		}
		recordKill(l.variant.Name, modeBridged)
	case cmd != nil && cmd.Process != nil:
		pid := cmd.Process.Pid
		if procutil.IsProcessRunning(pid) {
			if err := procutil.KillProcess(pid); err != nil {
				log.Debug("kill failed, process likely exited", "pid", pid, "error", err)
			}
		}
		recordKill(l.variant.Name, modeNative)
	}

	if done != nil {
		go done()
	}
}
