/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the build of the tokenclass binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time via -ldflags "-X bennypowers.dev/tokenclass/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	Dirty     = ""
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"buildTime" yaml:"buildTime"`
	Dirty     bool   `json:"dirty" yaml:"dirty"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

// Current returns the build of the running binary. Linker-provided values
// win over module build info.
func Current() Build {
	b := Build{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		Dirty:     Dirty == "true" || Dirty == "dirty",
		GoVersion: runtime.Version(),
	}
	if b.Version != "dev" {
		return b
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		b.Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "unknown" {
				b.Commit = s.Value
			}
		case "vcs.modified":
			b.Dirty = b.Dirty || s.Value == "true"
		}
	}
	return b
}

// String formats the build as "v1.2.3 (commit abc1234, dirty)".
func (b Build) String() string {
	if b.Commit == "" || b.Commit == "unknown" {
		return b.Version
	}
	commit := b.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if b.Dirty {
		return fmt.Sprintf("%s (commit %s, dirty)", b.Version, commit)
	}
	return fmt.Sprintf("%s (commit %s)", b.Version, commit)
}
