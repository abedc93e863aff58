/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tcfs "bennypowers.dev/tokenclass/fs"
	"bennypowers.dev/tokenclass/internal/mapfs"
)

var _ tcfs.FileSystem = (*mapfs.MapFileSystem)(nil)

func TestMapFileSystem_ReadWrite(t *testing.T) {
	mfs := mapfs.New()
	require.NoError(t, mfs.MkdirAll("/out/colors", 0755))
	require.NoError(t, mfs.WriteFile("/out/colors/primary.dart", []byte("class Primary {}"), 0644))

	data, err := mfs.ReadFile("out/colors/primary.dart")
	require.NoError(t, err)
	assert.Equal(t, "class Primary {}", string(data))

	assert.True(t, mfs.Exists("/out/colors"))
	assert.True(t, mfs.Exists("/out"))
	assert.False(t, mfs.Exists("/elsewhere"))
	assert.Equal(t, []string{"out/colors/primary.dart"}, mfs.Files())
}

func TestMapFileSystem_WriteBelowFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/out", "not a dir", 0644)

	err := mfs.WriteFile("/out/primary.dart", nil, 0644)
	assert.Error(t, err)
	assert.Error(t, mfs.MkdirAll("/out", 0755))
}

func TestMapFileSystem_Walk(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/a.json", "{}", 0644)
	mfs.AddFile("/tokens/nested/b.json", "{}", 0644)

	var seen []string
	err := fs.WalkDir(mfs, "/tokens", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			seen = append(seen, p)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/tokens/a.json", "/tokens/nested/b.json"}, seen)
}
