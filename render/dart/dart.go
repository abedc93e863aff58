/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dart renders token class hierarchies as Dart source for Flutter.
package dart

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenclass/naming"
	"bennypowers.dev/tokenclass/render"
	"bennypowers.dev/tokenclass/token"
)

// Options configures the Dart token renderers.
type Options struct {
	// PackageName is the Flutter package that hosts fonts and the sizes
	// helper. Empty omits the package marker and the sizes import.
	PackageName string

	// FontSizePrefix prefixes font sizes so they reference the sizes helper.
	FontSizePrefix string

	// ColorSuffix is appended to every color field name.
	ColorSuffix string

	// Lookup resolves color references. Nil disables reference resolution.
	Lookup token.Lookup
}

// Renderer emits Dart classes. It implements render.Renderer and
// render.Syntax.
type Renderer struct {
	registry *render.Registry
	namer    *naming.Generator
	opts     Options
}

var (
	_ render.Renderer = (*Renderer)(nil)
	_ render.Syntax   = (*Renderer)(nil)
)

// New creates a Dart renderer with the color, typography, and shadow
// renderers registered.
func New(namer *naming.Generator, opts Options) *Renderer {
	registry := render.NewRegistry()
	registry.Register(token.KindColor, Color(opts))
	registry.Register(token.KindTypography, Typography(opts))
	registry.Register(token.KindShadow, Shadow(opts))
	return NewWithRegistry(registry, namer, opts)
}

// NewWithRegistry creates a Dart renderer that dispatches tokens through
// the given registry.
func NewWithRegistry(registry *render.Registry, namer *naming.Generator, opts Options) *Renderer {
	return &Renderer{registry: registry, namer: namer, opts: opts}
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}

func constructorCall(class string, ctor render.Constructor) string {
	if ctor == render.Public {
		return class + "()"
	}
	return class + "._()"
}

func modifier(static bool) string {
	if static {
		return "static "
	}
	return ""
}

// OpenClass emits the class header and its constructor.
func (r *Renderer) OpenClass(name string, level int, ctor render.Constructor) string {
	in := indent(level)
	return fmt.Sprintf("%sclass %s {\n%s  %s;\n\n", in, name, in, constructorCall(name, ctor))
}

// CloseClass emits the closing brace followed by a blank line.
func (r *Renderer) CloseClass(level int) string {
	return indent(level) + "}\n\n"
}

// RenderFieldReference emits a final field holding an instance of class.
func (r *Renderer) RenderFieldReference(field, class string, static bool, level int, ctor render.Constructor) string {
	return fmt.Sprintf("%s%sfinal %s = %s;\n", indent(level+1), modifier(static), field, constructorCall(class, ctor))
}

// RenderToken dispatches tok to the renderer registered for its category.
func (r *Renderer) RenderToken(tok *token.Token, static bool, level int) (string, error) {
	return r.registry.Render(tok, render.Context{Namer: r.namer, Static: static, Level: level})
}

// Extension returns ".dart".
func (r *Renderer) Extension() string {
	return ".dart"
}

// Keywords returns the Dart reserved words.
func (r *Renderer) Keywords() naming.Keywords {
	return naming.DartKeywords
}

// Import returns a Dart import directive for uri.
func (r *Renderer) Import(uri string) string {
	return "import " + quote(uri) + ";"
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `$`, `\$`)

// quote renders s as a single-quoted Dart string literal.
func quote(s string) string {
	return "'" + stringEscaper.Replace(s) + "'"
}

// Imports returns the import directives needed by files of the given category.
func (r *Renderer) Imports(typ token.Type) []string {
	imports := []string{r.Import("package:flutter/material.dart")}
	if r.opts.PackageName == "" || typ.IsUnknown() {
		return imports
	}
	switch typ.Kind() {
	case token.KindTypography, token.KindShadow:
		imports = append(imports, r.Import(PackageURI(r.opts.PackageName, "utils/sizes.dart")))
	}
	return imports
}

// Comment prefixes every line of text with "// ".
func (r *Renderer) Comment(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("// "+line, " ")
	}
	return strings.Join(lines, "\n")
}

// PackageURI builds a package: URI for a path inside pkg.
func PackageURI(pkg, path string) string {
	return "package:" + pkg + "/" + strings.TrimPrefix(path, "/")
}
