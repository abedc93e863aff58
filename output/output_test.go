/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package output_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenclass/generate"
	"bennypowers.dev/tokenclass/internal/logger"
	"bennypowers.dev/tokenclass/internal/mapfs"
	"bennypowers.dev/tokenclass/output"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	m.Run()
}

var files = []generate.File{
	{Name: "brand", Path: "lib/colors", Content: "class Brand {}\n"},
	{Name: "headings", Path: "lib/typography", Content: "class Headings {}\n"},
	{Name: "root", Path: "", Content: "class Root {}\n"},
}

func TestWrite(t *testing.T) {
	mfs := mapfs.New()

	results, err := output.Write(context.Background(), files, output.Options{
		FS:        mfs,
		Root:      "/out",
		Extension: ".dart",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"out/lib/colors/brand.dart",
		"out/lib/typography/headings.dart",
		"out/root.dart",
	}, mfs.Files())

	data, err := mfs.ReadFile("/out/lib/colors/brand.dart")
	require.NoError(t, err)
	assert.Equal(t, "class Brand {}\n", string(data))

	require.Len(t, results, 3)
	assert.Equal(t, "/out/lib/colors/brand.dart", results[0].Path)
	assert.Equal(t, len("class Brand {}\n"), results[0].Bytes)
}

func TestWrite_DryRun(t *testing.T) {
	mfs := mapfs.New()

	results, err := output.Write(context.Background(), files, output.Options{
		FS:        mfs,
		Root:      "/out",
		Extension: ".dart",
		DryRun:    true,
	})
	require.NoError(t, err)

	assert.Empty(t, mfs.Files())
	require.Len(t, results, 3)
	assert.Equal(t, "/out/lib/typography/headings.dart", results[1].Path)
}

func TestWrite_LastDuplicateWins(t *testing.T) {
	mfs := mapfs.New()
	dupes := []generate.File{
		{Name: "brand", Path: "lib/colors", Content: "first\n"},
		{Name: "brand", Path: "lib/colors", Content: "second\n"},
	}

	_, err := output.Write(context.Background(), dupes, output.Options{FS: mfs, Root: "/out", Extension: ".dart"})
	require.NoError(t, err)

	data, err := mfs.ReadFile("/out/lib/colors/brand.dart")
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestWrite_DirectoryIsFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/out/lib/colors", "not a directory", 0644)

	_, err := output.Write(context.Background(), files, output.Options{FS: mfs, Root: "/out", Extension: ".dart"})
	assert.True(t, errors.Is(err, output.ErrWrite), "expected ErrWrite, got %v", err)
}

func TestWrite_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := output.Write(ctx, files, output.Options{FS: mapfs.New(), Root: "/out"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestPath(t *testing.T) {
	tests := []struct {
		name string
		file generate.File
		root string
		want string
	}{
		{"nested", generate.File{Name: "brand", Path: "lib/colors"}, "out", "out/lib/colors/brand.dart"},
		{"no directory", generate.File{Name: "brand"}, "out", "out/brand.dart"},
		{"relative root", generate.File{Name: "brand", Path: "lib"}, ".", "lib/brand.dart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := output.Path(tt.file, output.Options{Root: tt.root, Extension: ".dart"})
			if got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}
