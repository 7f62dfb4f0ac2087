// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// edgelaunch is a small exerciser for the launcher packages: it resolves,
// starts, and kills Microsoft Edge variants outside of any test runner.
package main

import (
	"os"

	"github.com/jongio/edge-launcher-core/logutil"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug, jsonLogs bool

	root := &cobra.Command{
		Use:          "edgelaunch",
		Short:        "Launch Microsoft Edge variants for local debugging",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logutil.SetupLogger(debug, jsonLogs)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")

	root.AddCommand(newListCmd(), newRunCmd())
	return root
}
