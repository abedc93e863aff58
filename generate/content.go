/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"strings"

	"bennypowers.dev/tokenclass/internal/logger"
	"bennypowers.dev/tokenclass/naming"
	"bennypowers.dev/tokenclass/render"
	"bennypowers.dev/tokenclass/tree"
)

// FileContent emits the class for start followed by the classes of its
// descendants, depth first.
//
// The class for start is named from its group name qualified by
// classPrefix and opened with ctor. Its child references and token fields
// are static when static is set. Descendant classes are always private,
// prefixed by their parent class name, and have instance-level members.
// Every class is emitted at the same level since the output languages do
// not nest class declarations.
func FileContent(
	start *tree.Node,
	r render.Renderer,
	namer *naming.Generator,
	static bool,
	classPrefix string,
	level int,
	ctor render.Constructor,
) (string, error) {
	var sb strings.Builder
	if err := writeClass(&sb, start, r, namer, static, classPrefix, level, ctor); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeClass(
	sb *strings.Builder,
	node *tree.Node,
	r render.Renderer,
	namer *naming.Generator,
	static bool,
	classPrefix string,
	level int,
	ctor render.Constructor,
) error {
	className := namer.Class(node.Name(), classPrefix)

	sb.WriteString(r.OpenClass(className, level, ctor))

	children := node.Children.Nodes()
	for _, child := range children {
		field := namer.Field(child.Name())
		childClass := namer.Class(child.Name(), className)
		sb.WriteString(r.RenderFieldReference(field, childClass, static, level, render.Private))
	}

	for _, tok := range node.Tokens {
		out, err := r.RenderToken(tok, static, level)
		if err != nil {
			return err
		}
		if out == "" {
			logger.Debug("skipped token %q in %s: no usable value", tok.Name, className)
		}
		sb.WriteString(out)
	}

	sb.WriteString(r.CloseClass(level))

	for _, child := range children {
		if err := writeClass(sb, child, r, namer, false, className, level, render.Private); err != nil {
			return err
		}
	}
	return nil
}
