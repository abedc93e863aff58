/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tree provides the tree command for tokenclass.
package tree

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokenclass/config"
	"bennypowers.dev/tokenclass/fs"
	"bennypowers.dev/tokenclass/load"
	"bennypowers.dev/tokenclass/token"
	treelib "bennypowers.dev/tokenclass/tree"
)

// Cmd is the tree cobra command.
var Cmd = &cobra.Command{
	Use:   "tree [snapshots...]",
	Short: "Print the group hierarchy of token snapshots",
	Long: `Print the groups and tokens of one or more snapshots as an indented
outline. With --category, print one filtered section per category.

Examples:
  tokenclass tree tokens/*.json
  tokenclass tree --category color --category shadow --prune`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringSlice("category", nil, "Print only these categories (color, typography, shadow)")
	Cmd.Flags().Bool("prune", false, "Drop groups without tokens")
}

func run(cmd *cobra.Command, args []string) error {
	categories, _ := cmd.Flags().GetStringSlice("category")
	prune, _ := cmd.Flags().GetBool("prune")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, cwd)
	var paths []string
	if len(args) == 0 {
		paths, err = cfg.ExpandSnapshots(filesystem, cwd)
	} else {
		paths, err = config.ExpandPaths(filesystem, cwd, args)
	}
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	snapshot, err := load.Load(ctx, paths, load.Options{FS: filesystem})
	if err != nil {
		return err
	}

	filter := &config.Config{Categories: categories}
	return Print(cmd.OutOrStdout(), treelib.Build(snapshot.Groups, snapshot.Tokens), filter.CategoryTypes(), prune)
}

// Print writes t to w. With categories, each category gets a title-cased
// heading followed by its filtered tree.
func Print(w io.Writer, t treelib.Tree, categories []token.Type, prune bool) error {
	if len(categories) == 0 {
		if prune {
			t = treelib.Prune(t)
		}
		return treelib.Fprint(w, t)
	}

	title := cases.Title(language.English)
	for i, typ := range categories {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", title.String(typ.String())); err != nil {
			return err
		}
		filtered := treelib.FilterByType(t, typ)
		if prune {
			filtered = treelib.Prune(filtered)
		}
		if len(filtered.Roots) == 0 {
			if _, err := fmt.Fprintln(w, "  (none)"); err != nil {
				return err
			}
			continue
		}
		if err := treelib.Fprint(w, filtered); err != nil {
			return err
		}
	}
	return nil
}
