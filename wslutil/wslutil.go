// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package wslutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/jongio/edge-launcher-core/logutil"
)

// DefaultBridgedPath is the fallback Windows-side executable used when no
// probed install directory exists. The stable channel under the C drive is
// by far the most common install.
const DefaultBridgedPath = "/mnt/c/Program Files/Microsoft/Edge/Application/msedge.exe"

// driveLetterPattern extracts the drive letter from a Windows-style path
// such as `C:\Users\dev`.
var driveLetterPattern = regexp.MustCompile(`(?i)^([A-Z]):\\`)

// IsWSL reports whether the current process runs inside the Windows
// Subsystem for Linux. Detection uses the WSL_DISTRO_NAME environment
// variable set by WSL itself, with /proc/version as a fallback for sessions
// that scrub the environment.
func IsWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	if os.Getenv("WSL_DISTRO_NAME") != "" {
		return true
	}
	version, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(version)), "microsoft")
}

// Bridge resolves Windows-side paths from inside WSL. The zero value is
// not usable; construct with New, or populate the function fields with
// fakes in tests.
type Bridge struct {
	// Translate invokes the platform path translation (wslpath).
	// direction is "-w" (Linux to Windows) or "-u" (Windows to Linux).
	Translate func(direction, path string) (string, error)

	// Exists reports whether a Linux-side path exists.
	Exists func(string) bool

	// PathList returns the directories of the process search path.
	PathList func() []string
}

// New returns a Bridge backed by the real wslpath utility and filesystem.
func New() *Bridge {
	return &Bridge{
		Translate: runWSLPath,
		Exists: func(p string) bool {
			_, err := os.Stat(p)
			return err == nil
		},
		PathList: func() []string {
			return filepath.SplitList(os.Getenv("PATH"))
		},
	}
}

// WindowsPath translates a Linux path to its Windows form via wslpath -w.
func (b *Bridge) WindowsPath(path string) (string, error) {
	return b.Translate("-w", path)
}

// DriveRoots returns the distinct Windows drive letters reachable from the
// process search path, uppercased, in first-seen order. Directories that do
// not exist or fail translation are skipped.
func (b *Bridge) DriveRoots() []string {
	var letters []string
	seen := map[string]bool{}
	for _, dir := range b.PathList() {
		if dir == "" || !b.Exists(dir) {
			continue
		}
		win, err := b.Translate("-w", dir)
		if err != nil {
			continue
		}
		m := driveLetterPattern.FindStringSubmatch(win)
		if m == nil {
			continue
		}
		letter := strings.ToUpper(m[1])
		if !seen[letter] {
			seen[letter] = true
			letters = append(letters, letter)
		}
	}
	return letters
}

// ProgramFilesPrefixes returns the Linux mount paths of every discovered
// drive's "Program Files" and "Program Files (x86)" directories.
func (b *Bridge) ProgramFilesPrefixes() []string {
	var prefixes []string
	for _, letter := range b.DriveRoots() {
		for _, dir := range []string{`:\Program Files`, `:\Program Files (x86)`} {
			mounted, err := b.Translate("-u", letter+dir)
			if err != nil {
				continue
			}
			if mounted = strings.TrimSpace(mounted); mounted != "" {
				prefixes = append(prefixes, mounted)
			}
		}
	}
	return prefixes
}

// ResolveBridgedPath searches every Program Files prefix for the given
// install-directory names and returns the first msedge.exe that exists.
// Multiple names cover launchers that accept more than one release-channel
// folder. When nothing is found the hardcoded default is returned so that
// the eventual spawn surfaces the failure.
func (b *Bridge) ResolveBridgedPath(installDirs ...string) string {
	for _, prefix := range b.ProgramFilesPrefixes() {
		for _, name := range installDirs {
			candidate := filepath.Join(prefix, "Microsoft", name, "Application", "msedge.exe")
			if b.Exists(candidate) {
				logutil.Debug("resolved bridged executable", "path", candidate)
				return candidate
			}
		}
	}
	logutil.Debug("no bridged install found, using default", "path", DefaultBridgedPath)
	return DefaultBridgedPath
}

// runWSLPath shells out to wslpath and trims the trailing newline it emits.
func runWSLPath(direction, path string) (string, error) {
	out, err := exec.Command("wslpath", direction, path).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
