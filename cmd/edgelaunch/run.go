// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gen2brain/beeep"
	"github.com/jongio/edge-launcher-core/launcher"
	"github.com/jongio/edge-launcher-core/logutil"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// tempBase stands in for the host test runner's base launcher: it only
// allocates the profile directory.
type tempBase struct {
	dir string
}

func (b tempBase) TempDir() string { return b.dir }

func newRunCmd() *cobra.Command {
	var (
		argsFile string
		flags    []string
		dataDir  string
		fallback bool
		notify   bool
	)

	cmd := &cobra.Command{
		Use:   "run <variant> <url>",
		Short: "Launch an Edge variant at a URL and kill it on interrupt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, cliArgs []string) error {
			variant, ok := launcher.VariantByName(cliArgs[0])
			if !ok {
				return fmt.Errorf("unknown variant %q (see 'edgelaunch list')", cliArgs[0])
			}
			url := cliArgs[1]

			launchArgs, err := mergeArgs(argsFile, flags, dataDir)
			if err != nil {
				return err
			}

			tmp, err := os.MkdirTemp("", "edgelaunch-*")
			if err != nil {
				return err
			}
			defer func() { _ = os.RemoveAll(tmp) }()

			reg := launcher.Registrations(launcher.Probe())["launcher:"+variant.Name]
			l := reg.New(tempBase{dir: tmp}, launchArgs)

			if err := l.Start(url); err != nil {
				if notify {
					_ = beeep.Notify("Edge Launcher", "browser did not start: "+err.Error(), "")
				}
				if fallback {
					logutil.Warn("falling back to the system default browser", "error", err)
					return browser.OpenURL(url)
				}
				return fmt.Errorf("browser did not start: %w", err)
			}

			fmt.Printf("launched %s (bridged=%v), press Ctrl-C to kill\n", variant.Name, l.Bridged())

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			<-interrupt

			done := make(chan struct{})
			l.Kill(func() { close(done) })
			<-done
			fmt.Println("killed")
			return nil
		},
	}

	addLaunchFlags(cmd.Flags(), &argsFile, &flags, &dataDir)
	cmd.Flags().BoolVar(&fallback, "fallback", false, "Open the system default browser when Edge does not start")
	cmd.Flags().BoolVar(&notify, "notify", false, "Show a desktop notification when the browser does not start")
	return cmd
}

// addLaunchFlags registers the flags shared with the host's per-launcher
// argument object.
func addLaunchFlags(fs *pflag.FlagSet, argsFile *string, flags *[]string, dataDir *string) {
	fs.StringVar(argsFile, "args-file", "", "YAML file with launcher args (flags, edgeDataDir)")
	fs.StringArrayVar(flags, "flag", nil, "Extra browser flag (repeatable)")
	fs.StringVar(dataDir, "data-dir", "", "Browser profile directory (overrides the temp default)")
}

// mergeArgs layers command-line values over the args file: CLI flags append
// after file flags, and a CLI data dir wins.
func mergeArgs(argsFile string, flags []string, dataDir string) (launcher.Args, error) {
	merged := launcher.Args{Flags: flags, EdgeDataDir: dataDir}
	if argsFile == "" {
		return merged, nil
	}
	loaded, err := launcher.LoadArgs(argsFile)
	if err != nil {
		return launcher.Args{}, err
	}
	merged.Flags = append(loaded.Flags, flags...)
	if merged.EdgeDataDir == "" {
		merged.EdgeDataDir = loaded.EdgeDataDir
	}
	return merged, nil
}
