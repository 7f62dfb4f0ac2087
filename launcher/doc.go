// Package launcher starts and stops Microsoft Edge for a host test runner.
//
// The package covers four OS/environment combinations: native Linux, native
// macOS, native Windows, and WSL bridging into Windows. In the WSL case the
// browser process runs on the other side of the OS boundary; it is created
// through `wmic process call create` inside a shell, and its Windows PID is
// recovered by scanning the shell's stderr for a sentinel line. That PID is
// the only handle a later kill can target, and until it is recovered (or if
// it never is) kill degrades to a no-op.
//
// Eight variants are registered, one per release channel with and without
// headless mode: Edge, EdgeHeadless, EdgeBeta, EdgeBetaHeadless, EdgeDev,
// EdgeDevHeadless, EdgeCanary, EdgeCanaryHeadless. Each carries its Windows
// install-directory name, its Linux binary names, its macOS app path, and
// an environment variable (EDGE_BIN and friends) the host may use to
// override the probed default.
//
// # Host integration
//
//	snap := launcher.Probe()
//	regs := launcher.Registrations(snap)
//	reg := regs["launcher:EdgeHeadless"]
//	l := reg.New(base, launcher.Args{Flags: []string{"--lang=en-US"}})
//	if err := l.Start("http://localhost:9876"); err != nil {
//	    // the host reports "browser did not start"
//	}
//	...
//	l.Kill(func() { /* host continues its shutdown */ })
//
// Start returns spawn errors verbatim from the OS; nothing in this package
// raises past the Start/Kill boundary. Kill swallows all termination
// failures (the process may already be gone) and always invokes its done
// callback on a fresh goroutine.
package launcher
