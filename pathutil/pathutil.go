// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// windowsInstallRoots are the environment variables probed, in order, for
// Windows installs: per-user app data first, then 64-bit and 32-bit
// Program Files.
var windowsInstallRoots = []string{"LOCALAPPDATA", "PROGRAMFILES", "PROGRAMFILES(X86)"}

// ResolveNativePath searches the PATH for the first of the given binary
// names. It is only active on Linux; on every other OS it returns "".
// Lookup errors are treated as "not found".
func ResolveNativePath(candidates ...string) string {
	if runtime.GOOS != "linux" {
		return ""
	}
	return lookPathFirst(exec.LookPath, candidates)
}

// ResolveWindowsPath returns the Edge executable for the given Windows
// install-directory name (e.g. "Edge", "Edge Beta", "Edge SxS"). It is only
// active on Windows; on every other OS it returns "".
//
// When none of the probed locations exist, the last computed candidate is
// returned unverified. Spawning that path lets the OS report a precise
// "file not found" instead of this layer guessing at the cause.
func ResolveWindowsPath(installDir string) string {
	if runtime.GOOS != "windows" {
		return ""
	}
	return windowsCandidate(os.Getenv, fileExists, installDir)
}

// ResolveDarwinPath resolves the Edge executable on macOS given the
// conventional /Applications default. A per-user install under
// ~/Applications wins when it exists. Only active on macOS; returns ""
// elsewhere.
func ResolveDarwinPath(defaultPath string) string {
	if runtime.GOOS != "darwin" {
		return ""
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultPath
	}
	return darwinCandidate(home, defaultPath, fileExists)
}

// lookPathFirst returns the first candidate resolvable by look, or "".
func lookPathFirst(look func(string) (string, error), candidates []string) string {
	for _, name := range candidates {
		if p, err := look(name); err == nil {
			return p
		}
	}
	return ""
}

// windowsCandidate probes the install roots in order and returns the first
// existing executable path. If none exist it returns the last candidate it
// computed (the 32-bit Program Files location when all roots are set).
func windowsCandidate(getenv func(string) string, exists func(string) bool, installDir string) string {
	suffix := filepath.Join("Microsoft", installDir, "Application", "msedge.exe")

	var last string
	for _, env := range windowsInstallRoots {
		root := getenv(env)
		if root == "" {
			continue
		}
		last = filepath.Join(root, suffix)
		if exists(last) {
			return last
		}
	}
	return last
}

// darwinCandidate prefers the home-relative install when present.
func darwinCandidate(home, defaultPath string, exists func(string) bool) string {
	homePath := filepath.Join(home, defaultPath)
	if exists(homePath) {
		return homePath
	}
	return defaultPath
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
