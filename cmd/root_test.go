/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cmd

import (
	"bytes"
	"io"
	"testing"

	"bennypowers.dev/tokenclass/internal/logger"
)

func TestSubcommands(t *testing.T) {
	want := map[string]bool{"generate": false, "list": false, "tree": false, "validate": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInvalidLogLevel(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { _ = logger.SetLevel("info") })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--log-level", "loud", "version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for invalid log level")
	}
}
