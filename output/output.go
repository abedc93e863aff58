/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package output writes generated files to disk.
package output

import (
	"context"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenclass/fs"
	"bennypowers.dev/tokenclass/generate"
	"bennypowers.dev/tokenclass/internal/logger"
)

// Options configures where and how files are written.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Root is the directory file paths are relative to.
	Root string

	// Extension is appended to every file name, including the dot.
	Extension string

	// DryRun reports the paths without touching the filesystem.
	DryRun bool
}

// Result describes one written (or, in dry-run mode, planned) file.
type Result struct {
	Path  string
	Bytes int
}

// Path returns the on-disk path of f under opts.
func Path(f generate.File, opts Options) string {
	return filepath.Join(opts.Root, filepath.FromSlash(f.Path), f.Filename(opts.Extension))
}

// Write creates the directories of files and writes them in order.
// Files resolving to the same path overwrite earlier ones; a warning is
// logged for each such collision.
func Write(ctx context.Context, files []generate.File, opts Options) ([]Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	seen := make(map[string]struct{}, len(files))
	results := make([]Result, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		p := Path(f, opts)
		if _, dup := seen[p]; dup {
			logger.Warn("%s is generated more than once; keeping the last version", p)
		}
		seen[p] = struct{}{}

		if !opts.DryRun {
			if err := filesystem.MkdirAll(filepath.Dir(p), 0755); err != nil {
				return results, fmt.Errorf("%w: %s: %w", ErrWrite, filepath.Dir(p), err)
			}
			if err := filesystem.WriteFile(p, []byte(f.Content), 0644); err != nil {
				return results, fmt.Errorf("%w: %s: %w", ErrWrite, p, err)
			}
			logger.Info("wrote %s", p)
		}
		results = append(results, Result{Path: p, Bytes: len(f.Content)})
	}
	return results, nil
}
