/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate turns a token tree into source files holding one class
// hierarchy per token group, category by category.
package generate

import (
	"path"
	"strings"

	"bennypowers.dev/tokenclass/naming"
	"bennypowers.dev/tokenclass/render"
	"bennypowers.dev/tokenclass/token"
)

// DefaultDisclaimer is the banner prepended to generated files when no
// custom text is configured.
const DefaultDisclaimer = "This file was generated automatically by tokenclass.\nDo not edit it by hand."

// DefaultCategories are generated when Options.Categories is empty, in
// this order.
var DefaultCategories = []token.Type{token.Color, token.Typography, token.Shadow}

// File is one generated source file.
type File struct {
	// Name is the file name without extension.
	Name string

	// Path is the output directory, relative to the output root.
	Path string

	// Content is the complete file text.
	Content string
}

// Filename returns the file name with ext appended.
func (f File) Filename(ext string) string {
	return f.Name + ext
}

// Options configures file layout.
type Options struct {
	// BasePath is the directory under which category paths live.
	BasePath string

	// ColorPath, TypographyPath and ShadowPath are the per-category
	// directories below BasePath.
	ColorPath      string
	TypographyPath string
	ShadowPath     string

	// Unified adds a master color file referencing every color class.
	Unified bool

	// UnifiedClassName is the display name of the master color class.
	UnifiedClassName string

	// PackageName is used to import per-group files from the master file.
	PackageName string

	// Disclaimer, when non-empty, is prepended to every file as a comment.
	Disclaimer string

	// Prune drops empty groups before emission.
	Prune bool

	// Categories restricts generation. Empty means DefaultCategories.
	Categories []token.Type
}

// Generator emits files for a token tree.
type Generator struct {
	namer    *naming.Generator
	renderer render.Renderer
	syntax   render.Syntax
	opts     Options
}

// New creates a Generator.
func New(namer *naming.Generator, renderer render.Renderer, syntax render.Syntax, opts Options) *Generator {
	return &Generator{namer: namer, renderer: renderer, syntax: syntax, opts: opts}
}

// Categories returns the categories the generator emits, in order.
func (g *Generator) Categories() []token.Type {
	if len(g.opts.Categories) == 0 {
		return DefaultCategories
	}
	return g.opts.Categories
}

func (g *Generator) dir(typ token.Type) string {
	var sub string
	switch typ.Kind() {
	case token.KindColor:
		sub = g.opts.ColorPath
	case token.KindTypography:
		sub = g.opts.TypographyPath
	case token.KindShadow:
		sub = g.opts.ShadowPath
	default:
		sub = strings.ToLower(typ.Raw())
	}
	return cleanDir(path.Join(g.opts.BasePath, sub))
}

func cleanDir(p string) string {
	p = strings.TrimPrefix(path.Clean(p), "./")
	if p == "." {
		return ""
	}
	return p
}

// assemble joins imports and body, and prepends the disclaimer.
func (g *Generator) assemble(imports []string, body string) string {
	content := strings.Join(dedupe(imports), "\n") + "\n\n" + strings.TrimSpace(body) + "\n"
	if g.opts.Disclaimer != "" {
		content = g.syntax.Comment(g.opts.Disclaimer) + "\n\n" + content
	}
	return content
}

func dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
