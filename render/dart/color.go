/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dart

import (
	"fmt"

	"bennypowers.dev/tokenclass/naming"
	"bennypowers.dev/tokenclass/render"
	"bennypowers.dev/tokenclass/token"
)

// Color returns the renderer for color tokens. Tokens without a literal
// color fall back to their reference chain when opts.Lookup is set.
func Color(opts Options) render.TokenRenderer {
	return func(tok *token.Token, ctx render.Context) string {
		hex := token.ResolveColorHex(tok, opts.Lookup)
		if hex == "" {
			return ""
		}
		name := ctx.Namer.Identifier(tok.Name, naming.TargetField, "", opts.ColorSuffix)
		return fmt.Sprintf("%s%sfinal %s = const Color(0x%s);\n", indent(ctx.Level+1), modifier(ctx.Static), name, hex)
	}
}
