/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render defines the output syntax abstraction used by the class
// emitter, and the registry that dispatches tokens to category renderers.
package render

import (
	"bennypowers.dev/tokenclass/naming"
	"bennypowers.dev/tokenclass/token"
)

// Constructor selects how a generated class may be instantiated.
type Constructor int

const (
	// Private classes are only constructed by the file that declares them.
	Private Constructor = iota

	// Public classes may be constructed from other files.
	Public
)

// String returns the lower-case name of the constructor visibility.
func (c Constructor) String() string {
	if c == Public {
		return "public"
	}
	return "private"
}

// Renderer emits the fragments of a generated class hierarchy in one
// output syntax.
type Renderer interface {
	// OpenClass emits a class header and its constructor at the given depth.
	OpenClass(name string, level int, ctor Constructor) string

	// CloseClass emits the end of a class body.
	CloseClass(level int) string

	// RenderFieldReference emits a field holding an instance of class,
	// constructed with the given visibility.
	RenderFieldReference(field, class string, static bool, level int, ctor Constructor) string

	// RenderToken emits the field for one token. An empty string means the
	// token carried no usable value.
	RenderToken(tok *token.Token, static bool, level int) (string, error)
}

// Syntax describes the file-level conventions of an output language.
type Syntax interface {
	// Extension is the file extension of generated files, with its dot.
	Extension() string

	// Imports returns the import statements files of the given category need.
	Imports(typ token.Type) []string

	// Import returns the statement importing uri.
	Import(uri string) string

	// Keywords returns the reserved words of the language.
	Keywords() naming.Keywords

	// Comment turns text into line comments.
	Comment(text string) string
}

// Context carries what a token renderer needs besides the token itself.
type Context struct {
	// Namer turns token names into field identifiers.
	Namer *naming.Generator

	// Static marks the emitted field as a class-level member.
	Static bool

	// Level is the nesting depth of the enclosing class.
	Level int
}

// TokenRenderer renders a single token of one category. It returns an
// empty string when the token has no usable value.
type TokenRenderer func(tok *token.Token, ctx Context) string
