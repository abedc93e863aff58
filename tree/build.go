/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree

import "bennypowers.dev/tokenclass/token"

// Build assembles the hierarchy of groups and attaches tokens.
//
// A group becomes a child of its parent only when the parent exists and
// both share a category; otherwise it is promoted to a root. A token is
// attached to its owning group only when the categories match; otherwise
// it is dropped. Children are keyed by display name, so same-named
// siblings collide and the last one wins.
//
// Roots keep input order. Duplicate group identities collapse onto the
// first occurrence's position, holding the last occurrence's group.
func Build(groups []*token.Group, tokens []*token.Token) Tree {
	arena := make(map[string]*Node, len(groups))
	order := make([]string, 0, len(groups))
	for _, g := range groups {
		if g == nil {
			continue
		}
		if _, seen := arena[g.ID]; !seen {
			order = append(order, g.ID)
		}
		arena[g.ID] = newNode(g)
	}

	var roots []*Node
	for _, id := range order {
		node := arena[id]
		if node.Group.IsRoot() {
			roots = append(roots, node)
			continue
		}
		parent, ok := arena[node.Group.ParentID]
		if ok && parent != node && parent.Type().Equal(node.Type()) {
			parent.Children.Set(node.Name(), node)
			continue
		}
		roots = append(roots, node)
	}

	for _, t := range tokens {
		if t == nil {
			continue
		}
		node, ok := arena[t.GroupID]
		if ok && node.Type().Equal(t.Type) {
			node.Tokens = append(node.Tokens, t)
		}
	}

	return Tree{Roots: roots}
}
