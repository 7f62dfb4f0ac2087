// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package flagutil

import (
	"slices"
	"strings"
)

const (
	jsFlagsPrefix       = "--js-flags="
	remoteDebuggingFlag = "--remote-debugging-port="

	// DefaultRemoteDebuggingPort is appended to headless launches when the
	// caller supplies no port of its own. The test runner introspects the
	// browser through this port.
	DefaultRemoteDebuggingPort = "9222"

	// canaryWorkaroundFlags disables the optimizing JIT compiler. The canary
	// channel leaks memory under long test runs with optimization enabled.
	canaryWorkaroundFlags = "--nocrankshaft --noopt"
)

// IsJSFlags reports whether flag is a V8 flag-forwarding argument.
func IsJSFlags(flag string) bool {
	return strings.HasPrefix(flag, jsFlagsPrefix)
}

// SanitizeJSFlags strips one layer of shell quoting from a --js-flags
// value. Only a matching pair of leading and trailing quote characters is
// removed; unterminated or mismatched quoting leaves the flag unchanged,
// as does any flag that is not a --js-flags argument.
func SanitizeJSFlags(flag string) string {
	if !IsJSFlags(flag) {
		return flag
	}
	value := flag[len(jsFlagsPrefix):]
	if len(value) < 2 {
		return flag
	}
	quote := value[0]
	if quote != '\'' && quote != '"' {
		return flag
	}
	if value[len(value)-1] != quote {
		return flag
	}
	return jsFlagsPrefix + value[1:len(value)-1]
}

// BuildHeadlessFlags appends the headless flag set to the caller's flags.
// wsl appends --no-sandbox: headless Chromium-family browsers refuse to run
// as root, which is how WSL-bridged test sessions typically execute. When
// no --remote-debugging-port flag is present the default port is appended
// last.
func BuildHeadlessFlags(flags []string, wsl bool) []string {
	out := slices.Clone(flags)
	out = append(out, "--headless", "--disable-gpu", "--disable-dev-shm-usage")
	if wsl {
		out = append(out, "--no-sandbox")
	}
	if !slices.ContainsFunc(out, func(f string) bool {
		return strings.HasPrefix(f, remoteDebuggingFlag)
	}) {
		out = append(out, remoteDebuggingFlag+DefaultRemoteDebuggingPort)
	}
	return out
}

// BuildCanaryFlags merges the JIT workaround tokens into the caller's
// flags. An existing --js-flags entry is sanitized and extended in place so
// the browser sees exactly one such flag; otherwise a fresh entry carrying
// only the workaround tokens is appended.
func BuildCanaryFlags(flags []string) []string {
	out := slices.Clone(flags)
	for i, flag := range out {
		if IsJSFlags(flag) {
			out[i] = SanitizeJSFlags(flag) + " " + canaryWorkaroundFlags
			return out
		}
	}
	return append(out, jsFlagsPrefix+canaryWorkaroundFlags)
}
