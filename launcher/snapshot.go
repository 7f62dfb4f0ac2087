// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package launcher

import (
	"maps"
	"os"
	"runtime"

	"github.com/jongio/edge-launcher-core/logutil"
	"github.com/jongio/edge-launcher-core/pathutil"
)

// Snapshot is an immutable view of the default executable paths probed for
// every variant. The host constructs one with Probe at load time and passes
// it to Registrations; tests construct one with FakeSnapshot.
type Snapshot struct {
	commands map[string]string
}

// Probe resolves the default command for every variant on the current OS.
// Probing touches no state outside the returned snapshot, so calling it
// again after installing a browser picks up the change.
func Probe() Snapshot {
	commands := make(map[string]string, len(Variants()))
	for _, v := range Variants() {
		commands[v.Name] = probeVariant(v)
		logutil.Debug("probed variant", "variant", v.Name, "command", commands[v.Name])
	}
	return Snapshot{commands: commands}
}

// FakeSnapshot builds a snapshot from a fixed variant-to-command table.
func FakeSnapshot(commands map[string]string) Snapshot {
	return Snapshot{commands: maps.Clone(commands)}
}

// Command returns the probed default for the named variant, or "" when the
// variant is unknown or nothing was found (the executable-not-found
// sentinel).
func (s Snapshot) Command(variant string) string {
	return s.commands[variant]
}

// probeVariant runs the OS-appropriate resolver. On WSL this still resolves
// the native Linux binary; the bridge decision happens at launch time.
func probeVariant(v Variant) string {
	switch runtime.GOOS {
	case "linux":
		return pathutil.ResolveNativePath(v.LinuxCommands...)
	case "darwin":
		return pathutil.ResolveDarwinPath(v.DarwinPath)
	case "windows":
		return pathutil.ResolveWindowsPath(v.InstallDirs[0])
	default:
		return ""
	}
}

// ResolveCommand returns the executable for a variant: the user's
// environment-variable override when set, the snapshot's probed default
// otherwise.
func ResolveCommand(v Variant, snap Snapshot) string {
	if override := os.Getenv(v.EnvVar); override != "" {
		return override
	}
	return snap.Command(v.Name)
}
