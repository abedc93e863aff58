/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenclass.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenclass/config"
	"bennypowers.dev/tokenclass/fs"
	"bennypowers.dev/tokenclass/load"
	"bennypowers.dev/tokenclass/naming"
	"bennypowers.dev/tokenclass/token"
	"bennypowers.dev/tokenclass/tree"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [snapshots...]",
	Short: "List tokens with their generated field names",
	Long:  `List every token reachable in the group hierarchy, with the Dart field name it is generated as.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type (Color, Typography, Shadow)")
	Cmd.Flags().Bool("resolved", false, "Resolve color aliases")
	Cmd.Flags().String("format", "table", "Output format: table, json, yaml")
}

// Row is one listed token.
type Row struct {
	Group string `json:"group" yaml:"group"`
	Name  string `json:"name" yaml:"name"`
	Field string `json:"field" yaml:"field"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	resolved, _ := cmd.Flags().GetBool("resolved")
	format, _ := cmd.Flags().GetString("format")

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

	t := tree.Build(snapshot.Groups, snapshot.Tokens)
	if typeFilter != "" {
		t = tree.FilterByType(t, token.ParseType(naming.CapitalizeFirst(typeFilter)))
	}

	namer := naming.NewGenerator(naming.DartKeywords, cfg.CustomIdentifiers)
	namer.Rules = naming.DefaultRules(naming.FieldCasing(cfg.FieldCasing))
	namer.NumericPrefix = cfg.NumericPrefix

	var lookup token.Lookup
	if resolved {
		lookup = snapshot.Index()
	}
	return Write(cmd.OutOrStdout(), Rows(t, namer, lookup, cfg.ActiveColorSuffix()), format)
}

// Rows lists the tokens of t depth first. Color values are resolved
// through lookup when it is non-nil, and color fields carry colorSuffix
// as they do in generated classes.
func Rows(t tree.Tree, namer *naming.Generator, lookup token.Lookup, colorSuffix string) []Row {
	var rows []Row
	var walk func(n *tree.Node, path []string)
	walk = func(n *tree.Node, path []string) {
		path = append(path[:len(path):len(path)], n.Name())
		for _, tok := range n.Tokens {
			rows = append(rows, Row{
				Group: strings.Join(path, "/"),
				Name:  tok.Name,
				Field: fieldName(namer, tok, colorSuffix),
				Type:  tok.Type.String(),
				Value: display(tok, lookup),
			})
		}
		for _, child := range n.Children.Nodes() {
			walk(child, path)
		}
	}
	for _, root := range t.Roots {
		walk(root, nil)
	}
	return rows
}

func fieldName(namer *naming.Generator, tok *token.Token, colorSuffix string) string {
	if tok.Type.Kind() == token.KindColor {
		return namer.Identifier(tok.Name, naming.TargetField, "", colorSuffix)
	}
	return namer.Field(tok.Name)
}

func display(tok *token.Token, lookup token.Lookup) string {
	switch tok.Type.Kind() {
	case token.KindColor:
		if lookup != nil {
			if hex := token.ResolveColorHex(tok, lookup); hex != "" {
				return "0x" + hex
			}
			return "-"
		}
		if ref, ok := token.ReferencedTokenID(tok); ok {
			return "{" + ref + "}"
		}
		if hex := token.ColorHex(tok); hex != "" {
			return "0x" + hex
		}
	case token.KindTypography:
		if s, ok := token.TypographyOf(tok); ok {
			parts := []string{s.FontFamily, s.FontWeight}
			if s.HasFontSize {
				parts = append(parts, token.FormatNumber(s.FontSize))
			}
			return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
		}
	case token.KindShadow:
		if layers, ok := token.ShadowOf(tok); ok {
			return fmt.Sprintf("%d layers", len(layers))
		}
	}
	return "-"
}

// Write formats rows as a table, JSON or YAML.
func Write(w io.Writer, rows []Row, format string) error {
	switch format {
	case "json":
		if rows == nil {
			rows = []Row{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		return yaml.NewEncoder(w).Encode(rows)
	case "table":
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%-30s %-24s %-12s %s\n", r.Group, r.Field, r.Type, r.Value); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
