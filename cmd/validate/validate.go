/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokenclass.
package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenclass/config"
	"bennypowers.dev/tokenclass/fs"
	"bennypowers.dev/tokenclass/load"
	"bennypowers.dev/tokenclass/validator"
)

// ErrValidationFailed is returned when issues at or above the failing
// severity are found.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [snapshots...]",
	Short: "Validate token snapshots",
	Long: `Check token snapshots for problems that change or drop generated classes:
missing or mistyped parents, duplicate identities, parent cycles and
colors that cannot be resolved.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, cwd)

	if len(args) == 0 && len(cfg.Snapshots) == 0 {
		return fmt.Errorf("no files specified and no snapshots found in config")
	}
	var files []string
	if len(args) == 0 {
		files, err = cfg.ExpandSnapshots(filesystem, cwd)
	} else {
		files, err = config.ExpandPaths(filesystem, cwd, args)
	}
	if err != nil {
		return fmt.Errorf("error expanding snapshot paths: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return Check(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), filesystem, files, strict, quiet)
}

// Check loads files, validates them and reports issues to errOut and a
// summary to out.
func Check(ctx context.Context, out, errOut io.Writer, filesystem fs.FileSystem, files []string, strict, quiet bool) error {
	snapshot, err := load.Load(ctx, files, load.Options{FS: filesystem})
	if err != nil {
		return err
	}

	issues := validator.Validate(snapshot.Groups, snapshot.Tokens)
	for _, issue := range issues {
		if quiet && issue.Severity < validator.Error {
			continue
		}
		fmt.Fprintln(errOut, issue.Error())
	}

	failAt := validator.Error
	if strict {
		failAt = validator.Warning
	}
	if validator.HasErrors(issues, failAt) {
		return ErrValidationFailed
	}

	if !quiet {
		fmt.Fprintf(out, "%d groups, %d tokens in %d files: valid.\n", len(snapshot.Groups), len(snapshot.Tokens), len(files))
	}
	return nil
}
