// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package launcher

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Args is the per-launcher argument object supplied by the host's
// configuration. It is passed by value; launchers never mutate it.
type Args struct {
	// Flags are extra command-line flags appended before the variant's
	// strategy runs.
	Flags []string `yaml:"flags"`

	// EdgeDataDir overrides the host-allocated temp directory for the
	// browser profile.
	EdgeDataDir string `yaml:"edgeDataDir"`
}

// LoadArgs reads a YAML args file, e.g.:
//
//	flags:
//	  - --lang=en-US
//	  - --js-flags=--expose-gc
//	edgeDataDir: /tmp/edge-profile
func LoadArgs(path string) (Args, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Args{}, fmt.Errorf("reading launcher args: %w", err)
	}
	var args Args
	if err := yaml.Unmarshal(data, &args); err != nil {
		return Args{}, fmt.Errorf("parsing launcher args %s: %w", path, err)
	}
	return args, nil
}
