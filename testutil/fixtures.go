/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil mounts snapshot fixtures and compares golden output for
// tokenclass tests. Fixtures live under the calling package's testdata
// directory.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing"

	"bennypowers.dev/tokenclass/internal/mapfs"
)

const fixtureRoot = "testdata"

var updateGolden = flag.Bool("update", false, "rewrite golden files from generated output")

func fixturePath(p string) string {
	return filepath.Join(fixtureRoot, filepath.FromSlash(p))
}

// NewFixtureFS mounts the snapshot files under testdata/<fixtureDir> at
// mountPoint in a fresh in-memory filesystem.
func NewFixtureFS(t *testing.T, fixtureDir string, mountPoint string) *mapfs.MapFileSystem {
	t.Helper()

	dir := fixturePath(fixtureDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("snapshot fixture %s is not a directory under %s", fixtureDir, fixtureRoot)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		mfs.AddFile(path.Join(mountPoint, filepath.ToSlash(rel)), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("mounting snapshot fixture %s: %v", fixtureDir, err)
	}
	return mfs
}

// LoadFixtureFile returns the contents of testdata/<name>, typically a
// golden file.
func LoadFixtureFile(t *testing.T, name string) []byte {
	t.Helper()
	content, err := os.ReadFile(fixturePath(name))
	if err != nil {
		t.Fatalf("reading golden file %s: %v (run with -update to create it)", name, err)
	}
	return content
}

// UpdateGoldenFile rewrites testdata/<name> with actual when the test
// binary runs with -update. Otherwise it does nothing.
func UpdateGoldenFile(t *testing.T, name string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}
	target := fixturePath(name)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("creating golden directory for %s: %v", name, err)
	}
	if err := os.WriteFile(target, actual, 0644); err != nil {
		t.Fatalf("writing golden file %s: %v", name, err)
	}
	t.Logf("updated golden file %s", target)
}
