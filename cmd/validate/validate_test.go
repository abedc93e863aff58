/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"bennypowers.dev/tokenclass/internal/logger"
	"bennypowers.dev/tokenclass/testutil"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	m.Run()
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		strict  bool
		quiet   bool
		wantErr bool
		stdout  string
		stderr  string
	}{
		{
			name:   "valid",
			files:  []string{"/s/valid.json"},
			stdout: "2 groups, 1 tokens in 1 files: valid.\n",
		},
		{
			name:   "warning passes",
			files:  []string{"/s/orphan.json"},
			stdout: "valid.",
			stderr: `warning: group "Orphan" (o): parent group "missing" does not exist`,
		},
		{
			name:    "warning fails in strict mode",
			files:   []string{"/s/orphan.json"},
			strict:  true,
			wantErr: true,
			stderr:  "parent group",
		},
		{
			name:    "error fails",
			files:   []string{"/s/broken.json"},
			wantErr: true,
			stderr:  `aliased token "ghost" does not exist`,
		},
		{
			name:  "quiet hides warnings",
			files: []string{"/s/orphan.json"},
			quiet: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, "snapshots", "/s")
			var out, errOut bytes.Buffer

			err := Check(context.Background(), &out, &errOut, mfs, tt.files, tt.strict, tt.quiet)
			if tt.wantErr != errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.stdout != "" && !strings.Contains(out.String(), tt.stdout) {
				t.Errorf("stdout %q does not contain %q", out.String(), tt.stdout)
			}
			if tt.stderr != "" && !strings.Contains(errOut.String(), tt.stderr) {
				t.Errorf("stderr %q does not contain %q", errOut.String(), tt.stderr)
			}
			if tt.quiet && (out.Len() != 0 || errOut.Len() != 0) {
				t.Errorf("expected no output in quiet mode, got %q / %q", out.String(), errOut.String())
			}
		})
	}
}

func TestCheck_MissingFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "snapshots", "/s")
	err := Check(context.Background(), io.Discard, io.Discard, mfs, []string{"/s/none.json"}, false, false)
	if err == nil || errors.Is(err, ErrValidationFailed) {
		t.Errorf("expected load error, got %v", err)
	}
}
