// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"github.com/shirou/gopsutil/v4/process"
)

// IsProcessRunning reports whether a process with the given PID exists.
// Non-positive PIDs and lookup errors report false.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	running, err := process.PidExists(int32(pid))
	return err == nil && running
}

// KillProcess forcefully terminates the process with the given PID.
// Termination of an already-exited process returns the underlying OS
// error; callers that treat "already gone" as success should check
// IsProcessRunning first or discard the error.
func KillProcess(pid int) error {
	return killProcess(pid)
}
