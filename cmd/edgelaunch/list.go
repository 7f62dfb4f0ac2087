// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"os"

	"github.com/jongio/edge-launcher-core/launcher"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List Edge variants and their resolved executables",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := launcher.Probe()
			pretty := term.IsTerminal(int(os.Stdout.Fd()))

			for _, v := range launcher.Variants() {
				command := launcher.ResolveCommand(v, snap)
				if command == "" {
					command = "(not found)"
				}
				if pretty {
					fmt.Printf("%-20s %s\n", v.Name, command)
				} else {
					fmt.Printf("%s\t%s\n", v.Name, command)
				}
			}
			return nil
		},
	}
}
