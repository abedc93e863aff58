/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree_test

import (
	"bennypowers.dev/tokenclass/token"
	"bennypowers.dev/tokenclass/tree"
)

func group(id, name, parent string, typ ...token.Type) *token.Group {
	t := token.Color
	if len(typ) > 0 {
		t = typ[0]
	}
	return &token.Group{ID: id, Name: name, ParentID: parent, Type: t}
}

func tok(id, name, groupID string, typ ...token.Type) *token.Token {
	t := token.Color
	if len(typ) > 0 {
		t = typ[0]
	}
	return &token.Token{ID: id, Name: name, GroupID: groupID, Type: t}
}

func rootNames(t tree.Tree) []string {
	names := make([]string, 0, len(t.Roots))
	for _, r := range t.Roots {
		names = append(names, r.Name())
	}
	return names
}

func tokenNames(n *tree.Node) []string {
	names := make([]string, 0, len(n.Tokens))
	for _, t := range n.Tokens {
		names = append(names, t.Name)
	}
	return names
}

// shape renders a node as nested names for compact structural assertions.
func shape(n *tree.Node) map[string]any {
	children := map[string]any{}
	for _, c := range n.Children.Nodes() {
		children[c.Name()] = shape(c)
	}
	return map[string]any{"tokens": tokenNames(n), "children": children}
}
