/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenclass.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenclass/cmd/generate"
	"bennypowers.dev/tokenclass/cmd/list"
	"bennypowers.dev/tokenclass/cmd/tree"
	"bennypowers.dev/tokenclass/cmd/validate"
	"bennypowers.dev/tokenclass/cmd/version"
	"bennypowers.dev/tokenclass/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokenclass",
	Short: "Generate Flutter classes from design token snapshots",
	Long: `tokenclass turns design token snapshots (groups of colors, text styles
and shadows) into a hierarchy of Dart classes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = "debug"
		}
		return logger.SetLevel(level)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(tree.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
