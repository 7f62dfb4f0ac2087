// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package launcher

import (
	"slices"

	"github.com/jongio/edge-launcher-core/flagutil"
)

// Variant identifies one launchable Edge configuration: a release channel
// plus an optional headless mode. Variants are immutable records; the
// registry hands out copies.
type Variant struct {
	// Name is the registration suffix, e.g. "EdgeBetaHeadless".
	Name string

	// EnvVar overrides the probed executable path when set by the user.
	// Headless variants share their channel's variable.
	EnvVar string

	// InstallDirs are the Windows install-directory names tried under
	// Microsoft\<dir>\Application, in order.
	InstallDirs []string

	// LinuxCommands are the PATH binary names tried on Linux, in order.
	// Empty for channels that do not ship on Linux (canary).
	LinuxCommands []string

	// DarwinPath is the conventional /Applications executable path.
	DarwinPath string

	// Headless selects the headless flag strategy.
	Headless bool

	// Canary selects the JIT-workaround flag strategy.
	Canary bool
}

// channel describes one Edge release channel; the registry derives a plain
// and a headless variant from each.
type channel struct {
	suffix     string
	envVar     string
	installDir string
	darwinApp  string
	linuxCmds  []string
	canary     bool
}

var channels = []channel{
	{"", "EDGE_BIN", "Edge", "Microsoft Edge", []string{"microsoft-edge", "microsoft-edge-stable"}, false},
	{"Beta", "EDGE_BETA_BIN", "Edge Beta", "Microsoft Edge Beta", []string{"microsoft-edge-beta"}, false},
	{"Dev", "EDGE_DEV_BIN", "Edge Dev", "Microsoft Edge Dev", []string{"microsoft-edge-dev"}, false},
	// Canary installs as "Edge SxS" (side by side) and has no Linux build.
	{"Canary", "EDGE_CANARY_BIN", "Edge SxS", "Microsoft Edge Canary", nil, true},
}

// Variants returns the closed set of launchable variants, plain before
// headless, stable channel first.
func Variants() []Variant {
	variants := make([]Variant, 0, len(channels)*2)
	for _, ch := range channels {
		base := Variant{
			Name:          "Edge" + ch.suffix,
			EnvVar:        ch.envVar,
			InstallDirs:   []string{ch.installDir},
			LinuxCommands: slices.Clone(ch.linuxCmds),
			DarwinPath:    "/Applications/" + ch.darwinApp + ".app/Contents/MacOS/" + ch.darwinApp,
			Canary:        ch.canary,
		}
		headless := base
		headless.Name = base.Name + "Headless"
		headless.InstallDirs = slices.Clone(base.InstallDirs)
		headless.LinuxCommands = slices.Clone(base.LinuxCommands)
		headless.Headless = true
		variants = append(variants, base, headless)
	}
	return variants
}

// VariantByName looks up a variant by its registry name ("EdgeDevHeadless")
// or its registration key ("launcher:EdgeDevHeadless").
func VariantByName(name string) (Variant, bool) {
	trimmed := name
	if len(name) > len(registrationPrefix) && name[:len(registrationPrefix)] == registrationPrefix {
		trimmed = name[len(registrationPrefix):]
	}
	for _, v := range Variants() {
		if v.Name == trimmed {
			return v, true
		}
	}
	return Variant{}, false
}

// BuildFlags applies the variant's flag strategy to the user's flags.
// wsl is threaded through to the headless builder for its sandbox quirk.
// The input slice is never mutated.
func (v Variant) BuildFlags(userFlags []string, wsl bool) []string {
	flags := slices.Clone(userFlags)
	if v.Headless {
		flags = flagutil.BuildHeadlessFlags(flags, wsl)
	}
	if v.Canary {
		flags = flagutil.BuildCanaryFlags(flags)
	}
	return flags
}
