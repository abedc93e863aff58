/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads token snapshots: the flat group and token lists a
// design token platform exports.
package load

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenclass/fs"
	"bennypowers.dev/tokenclass/internal/logger"
	"bennypowers.dev/tokenclass/token"
)

// Snapshot holds every group and token of one or more snapshot files, in
// file order.
type Snapshot struct {
	Groups []*token.Group
	Tokens []*token.Token
}

// Index returns an identity index over the snapshot's tokens.
func (s *Snapshot) Index() token.Index {
	return token.NewIndex(s.Tokens)
}

// Append adds the groups and tokens of other after those of s.
func (s *Snapshot) Append(other *Snapshot) {
	s.Groups = append(s.Groups, other.Groups...)
	s.Tokens = append(s.Tokens, other.Tokens...)
}

type rawSnapshot struct {
	Groups []rawEntry `json:"groups" yaml:"groups"`
	Tokens []rawEntry `json:"tokens" yaml:"tokens"`
}

type rawEntry struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	ParentGroupID string `json:"parentGroupId" yaml:"parentGroupId"`
	TokenType     string `json:"tokenType" yaml:"tokenType"`
	Description   string `json:"description" yaml:"description"`
	Value         any    `json:"value" yaml:"value"`
}

// Options configures how snapshots are loaded.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem
}

// Load reads and concatenates the snapshot files at paths.
func Load(ctx context.Context, paths []string, opts Options) (*Snapshot, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	snapshot := &Snapshot{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := LoadFile(filesystem, path)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded %d groups and %d tokens from %s", len(s.Groups), len(s.Tokens), path)
		snapshot.Append(s)
	}
	return snapshot, nil
}

// LoadFile reads one snapshot file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON with comments allowed.
func LoadFile(filesystem fs.FileSystem, path string) (*Snapshot, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Format is a snapshot serialization.
type Format string

const (
	// FormatJSON is JSON, optionally with comments and trailing commas.
	FormatJSON Format = "json"

	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a snapshot. Every group and token needs an id and a name.
func Parse(data []byte, format Format) (*Snapshot, error) {
	var raw rawSnapshot
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	}

	s := &Snapshot{
		Groups: make([]*token.Group, 0, len(raw.Groups)),
		Tokens: make([]*token.Token, 0, len(raw.Tokens)),
	}
	for i, g := range raw.Groups {
		if err := g.check("groups", i); err != nil {
			return nil, err
		}
		s.Groups = append(s.Groups, &token.Group{
			ID:          g.ID,
			Name:        g.Name,
			ParentID:    g.ParentGroupID,
			Type:        token.ParseType(g.TokenType),
			Description: g.Description,
		})
	}
	for i, t := range raw.Tokens {
		if err := t.check("tokens", i); err != nil {
			return nil, err
		}
		s.Tokens = append(s.Tokens, &token.Token{
			ID:          t.ID,
			Name:        t.Name,
			GroupID:     t.ParentGroupID,
			Type:        token.ParseType(t.TokenType),
			Description: t.Description,
			Value:       t.Value,
		})
	}
	return s, nil
}

func (e rawEntry) check(list string, i int) error {
	if e.ID == "" {
		return fmt.Errorf("%w: %s[%d] has no id", ErrInvalidSnapshot, list, i)
	}
	if e.Name == "" {
		return fmt.Errorf("%w: %s[%d] (%s) has no name", ErrInvalidSnapshot, list, i, e.ID)
	}
	return nil
}
