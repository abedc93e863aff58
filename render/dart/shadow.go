/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dart

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenclass/render"
	"bennypowers.dev/tokenclass/token"
)

// Shadow returns the renderer for shadow tokens. Each layer becomes a
// BoxShadow in a list literal.
func Shadow(Options) render.TokenRenderer {
	return func(tok *token.Token, ctx render.Context) string {
		layers, ok := token.ShadowOf(tok)
		if !ok {
			return ""
		}
		name := ctx.Namer.Field(tok.Name)
		level := ctx.Level

		var sb strings.Builder
		if ctx.Static {
			fmt.Fprintf(&sb, "%sstatic const %s = [\n", indent(level+1), name)
		} else {
			fmt.Fprintf(&sb, "%sfinal %s = [\n", indent(level+1), name)
		}
		for _, layer := range layers {
			body := strings.Join(shadowArgs(layer), ",\n"+indent(level+3))
			fmt.Fprintf(&sb, "%sBoxShadow(\n%s%s\n%s),\n", indent(level+2), indent(level+3), body, indent(level+2))
		}
		fmt.Fprintf(&sb, "%s];\n", indent(level+1))
		return sb.String()
	}
}

func shadowArgs(l token.ShadowLayer) []string {
	n := token.FormatNumber
	return []string{
		fmt.Sprintf("color: Color.fromRGBO(%d, %d, %d, %s)", l.R, l.G, l.B, n(l.Opacity)),
		fmt.Sprintf("offset: Offset(%s, %s)", n(l.X), n(l.Y)),
		"blurRadius: " + n(l.Radius),
		"spreadRadius: " + n(l.Spread),
	}
}
