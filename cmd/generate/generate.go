/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for tokenclass.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenclass/config"
	"bennypowers.dev/tokenclass/fs"
	generatelib "bennypowers.dev/tokenclass/generate"
	"bennypowers.dev/tokenclass/load"
	"bennypowers.dev/tokenclass/naming"
	"bennypowers.dev/tokenclass/output"
	"bennypowers.dev/tokenclass/render/dart"
	"bennypowers.dev/tokenclass/tree"
)

// ErrNoSnapshots is returned when neither arguments nor config name a
// snapshot file.
var ErrNoSnapshots = errors.New("no snapshot files given")

// EnvPrefix prefixes environment variables that override config keys,
// e.g. TOKENCLASS_OUT.
const EnvPrefix = "TOKENCLASS"

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [snapshots...]",
	Short: "Generate Flutter classes from token snapshots",
	Long: `Generate Dart classes for the color, typography and shadow groups of
one or more design token snapshots.

Settings are read from .config/tokenclass.{yaml,yml,json}. Flags and
TOKENCLASS_* environment variables override the config file.

Examples:
  # Generate from the snapshots listed in the config file
  tokenclass generate

  # Generate from explicit files into ./app
  tokenclass generate -o app tokens/*.json

  # Add a master color class
  tokenclass generate --unified --class-name AppColors

  # List the files that would be written
  tokenclass generate --dry-run`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

// flagKeys maps command flags to the config keys they override.
var flagKeys = map[string]string{
	"out":          "out",
	"unified":      "createUnifiedColorFile",
	"class-name":   "unifiedColorClassName",
	"disclaimer":   "generateDisclaimer",
	"package":      "packageName",
	"prune":        "pruneEmptyGroups",
	"category":     "categories",
	"field-casing": "fieldCasing",
}

func init() {
	Cmd.Flags().StringP("out", "o", "", "Output directory (default from config, or lib)")
	Cmd.Flags().Bool("unified", false, "Generate a master color class referencing every color group")
	Cmd.Flags().String("class-name", "", "Name of the master color class")
	Cmd.Flags().Bool("disclaimer", false, "Prepend an auto-generated banner to every file")
	Cmd.Flags().String("package", "", "Flutter package name used in imports")
	Cmd.Flags().Bool("prune", true, "Drop groups without tokens")
	Cmd.Flags().StringSlice("category", nil, "Restrict generation to categories (color, typography, shadow)")
	Cmd.Flags().String("field-casing", "", "Field casing: camel, capitalized or pascal")
	Cmd.Flags().Bool("dry-run", false, "List generated files without writing them")
}

func run(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, cwd)

	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}
	applyOverrides(cfg, v)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := Execute(ctx, cfg, Options{
		FS:     filesystem,
		Root:   cwd,
		Args:   args,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), results, dryRun)
}

// newViper binds the override flags and TOKENCLASS_* environment
// variables to their config keys.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("binding --%s: %w", flag, err)
		}
		if err := v.BindEnv(key, EnvName(flag)); err != nil {
			return nil, fmt.Errorf("binding env for --%s: %w", flag, err)
		}
	}
	return v, nil
}

// EnvName returns the environment variable overriding flag.
func EnvName(flag string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyOverrides copies every key set by a changed flag or environment
// variable onto cfg.
func applyOverrides(cfg *config.Config, v *viper.Viper) {
	if v.IsSet("out") {
		cfg.Out = v.GetString("out")
	}
	if v.IsSet("createUnifiedColorFile") {
		cfg.CreateUnifiedColorFile = v.GetBool("createUnifiedColorFile")
	}
	if v.IsSet("unifiedColorClassName") {
		cfg.UnifiedColorClassName = v.GetString("unifiedColorClassName")
	}
	if v.IsSet("generateDisclaimer") {
		cfg.GenerateDisclaimer = v.GetBool("generateDisclaimer")
	}
	if v.IsSet("packageName") {
		cfg.PackageName = v.GetString("packageName")
	}
	if v.IsSet("pruneEmptyGroups") {
		cfg.PruneEmptyGroups = v.GetBool("pruneEmptyGroups")
	}
	if v.IsSet("categories") {
		cfg.Categories = v.GetStringSlice("categories")
	}
	if v.IsSet("fieldCasing") {
		cfg.FieldCasing = v.GetString("fieldCasing")
	}
}

// Options configures one generation run.
type Options struct {
	// FS is the filesystem snapshots are read from and files written to.
	FS fs.FileSystem

	// Root resolves relative snapshot and output paths.
	Root string

	// Args are snapshot paths or globs. They replace cfg.Snapshots.
	Args []string

	// DryRun plans the output without writing it.
	DryRun bool
}

// Execute validates cfg, loads the snapshots, generates every category
// and writes the files.
func Execute(ctx context.Context, cfg *config.Config, opts Options) ([]output.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	patterns := opts.Args
	var paths []string
	var err error
	switch {
	case len(patterns) > 0:
		paths, err = config.ExpandPaths(opts.FS, opts.Root, patterns)
	case len(cfg.Snapshots) > 0:
		patterns = cfg.Snapshots
		paths, err = cfg.ExpandSnapshots(opts.FS, opts.Root)
	default:
		return nil, ErrNoSnapshots
	}
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s matched nothing", ErrNoSnapshots, strings.Join(patterns, ", "))
	}

	snapshot, err := load.Load(ctx, paths, load.Options{FS: opts.FS})
	if err != nil {
		return nil, err
	}
	t := tree.Build(snapshot.Groups, snapshot.Tokens)

	namer := naming.NewGenerator(naming.DartKeywords, cfg.CustomIdentifiers)
	namer.Rules = naming.DefaultRules(naming.FieldCasing(cfg.FieldCasing))
	namer.NumericPrefix = cfg.NumericPrefix

	renderer := dart.New(namer, dart.Options{
		PackageName:    cfg.PackageName,
		FontSizePrefix: cfg.FontSizePrefix,
		ColorSuffix:    cfg.ActiveColorSuffix(),
		Lookup:         snapshot.Index(),
	})

	var disclaimer string
	if cfg.GenerateDisclaimer {
		disclaimer = cfg.Disclaimer
		if disclaimer == "" {
			disclaimer = generatelib.DefaultDisclaimer
		}
	}

	generator := generatelib.New(namer, renderer, renderer, generatelib.Options{
		BasePath:         cfg.BasePath,
		ColorPath:        cfg.ColorPath,
		TypographyPath:   cfg.TypographyPath,
		ShadowPath:       cfg.ShadowPath,
		Unified:          cfg.CreateUnifiedColorFile,
		UnifiedClassName: cfg.UnifiedColorClassName,
		PackageName:      cfg.PackageName,
		Disclaimer:       disclaimer,
		Prune:            cfg.PruneEmptyGroups,
		Categories:       cfg.CategoryTypes(),
	})
	files, err := generator.All(ctx, t)
	if err != nil {
		return nil, err
	}

	out := cfg.Out
	if !filepath.IsAbs(out) {
		out = filepath.Join(opts.Root, out)
	}
	return output.Write(ctx, files, output.Options{
		FS:        opts.FS,
		Root:      out,
		Extension: renderer.Extension(),
		DryRun:    opts.DryRun,
	})
}

func report(w io.Writer, results []output.Result, dryRun bool) error {
	if dryRun {
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Path); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "Generated %d files\n", len(results))
	return err
}
