/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"bennypowers.dev/tokenclass/internal/logger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		_ = logger.SetLevel("info")
	})

	if err := logger.SetLevel("info"); err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden %d", 1)
	logger.Info("shown %d", 2)
	logger.Warn("careful %s", "now")

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Errorf("debug message written at info level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("info message missing: %q", out)
	}
	if !strings.Contains(out, "careful now") || !strings.Contains(out, "WRN") {
		t.Errorf("warning missing or unlabelled: %q", out)
	}

	buf.Reset()
	if err := logger.SetLevel("debug"); err != nil {
		t.Fatal(err)
	}
	logger.Debug("visible %d", 3)
	if !strings.Contains(buf.String(), "visible 3") {
		t.Errorf("debug message missing at debug level: %q", buf.String())
	}
}

func TestSetLevel_Invalid(t *testing.T) {
	if err := logger.SetLevel("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestSetOutput_Discard(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	logger.Warn("nothing to see")
}
