// Package procutil provides cross-platform process liveness checks and
// forceful termination for launched browser processes.
//
// Liveness is implemented with github.com/shirou/gopsutil, which uses the
// native platform APIs (OpenProcess on Windows, /proc on Linux, sysctl on
// macOS/BSD) and therefore does not suffer the stale-PID false positives of
// os.FindProcess + Signal(0) on Windows.
//
// Termination is forceful by design: the launcher's kill hook fires when
// the host test runner is done with the browser, and a browser that ignores
// a polite signal would leak renderer processes into the next run.
package procutil
