// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package launcher

// registrationPrefix namespaces the keys the host's dependency-injection
// container looks up.
const registrationPrefix = "launcher:"

// Factory constructs a launcher from the host-injected dependencies: the
// base-launcher decorator and the user's per-launcher argument object.
type Factory func(base BaseLauncher, args Args) *Launcher

// Registration mirrors the host's ['type', Constructor] plugin tuple.
type Registration struct {
	Kind string
	New  Factory
}

// Registrations returns the plugin map the host consumes, one entry per
// variant keyed "launcher:<Name>". All factories share the given snapshot;
// hosts that want fresh probing call Probe again and rebuild the map.
func Registrations(snap Snapshot) map[string]Registration {
	regs := make(map[string]Registration, len(Variants()))
	for _, v := range Variants() {
		variant := v
		regs[registrationPrefix+variant.Name] = Registration{
			Kind: "type",
			New: func(base BaseLauncher, args Args) *Launcher {
				return New(variant, snap, base, args)
			},
		}
	}
	return regs
}
