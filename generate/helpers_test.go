/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate_test

import (
	"bennypowers.dev/tokenclass/generate"
	"bennypowers.dev/tokenclass/naming"
	"bennypowers.dev/tokenclass/render/dart"
	"bennypowers.dev/tokenclass/token"
	"bennypowers.dev/tokenclass/tree"
)

func newGenerator(opts generate.Options, dartOpts dart.Options) *generate.Generator {
	namer := naming.NewGenerator(naming.DartKeywords, nil)
	r := dart.New(namer, dartOpts)
	return generate.New(namer, r, r, opts)
}

func group(id, name, parent string, typ token.Type) *token.Group {
	return &token.Group{ID: id, Name: name, ParentID: parent, Type: typ}
}

func tok(id, name, groupID string, typ token.Type, value any) *token.Token {
	return &token.Token{ID: id, Name: name, GroupID: groupID, Type: typ, Value: value}
}

// brandTree is a Brand root with a Primary child holding one accent color.
func brandTree() tree.Tree {
	return tree.Build(
		[]*token.Group{
			group("g1", "Brand", "", token.Color),
			group("g2", "Primary", "g1", token.Color),
		},
		[]*token.Token{tok("t1", "accent", "g2", token.Color, "#FF8000FF")},
	)
}

func sampleTree() tree.Tree {
	return tree.Build(
		[]*token.Group{
			group("c0", "Colors", "", token.Color),
			group("c1", "Brand", "c0", token.Color),
			group("c2", "Light", "c1", token.Color),
			group("c3", "Empty", "c0", token.Color),
			group("t0", "Typography", "", token.Typography),
			group("t1", "Headings", "t0", token.Typography),
			group("s0", "Shadows", "", token.Shadow),
			group("s1", "Elevation", "s0", token.Shadow),
		},
		[]*token.Token{
			tok("tc1", "primary", "c1", token.Color, "#0000FFFF"),
			tok("tc2", "surface", "c2", token.Color, "#FFFFFF"),
			tok("tt1", "h1", "t1", token.Typography, map[string]any{
				"fontFamily": "Inter",
				"fontWeight": "Bold",
				"fontSize":   32,
				"lineHeight": 40,
			}),
			tok("ts1", "low", "s1", token.Shadow, []any{
				map[string]any{"color": "#000000", "opacity": 0.2, "x": 0, "y": 1, "radius": 2, "spread": 0},
			}),
		},
	)
}
