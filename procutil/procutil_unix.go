//go:build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"syscall"
)

// killProcess delivers SIGKILL directly to the PID.
func killProcess(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}
