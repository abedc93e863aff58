/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree

// Prune drops every node that has no tokens and no children left after
// pruning its own children, cascading up to the roots. The input tree is
// not modified; surviving nodes are fresh copies sharing groups and tokens.
func Prune(t Tree) Tree {
	var roots []*Node
	for _, root := range t.Roots {
		if pruned := pruneNode(root); pruned != nil {
			roots = append(roots, pruned)
		}
	}
	return Tree{Roots: roots}
}

func pruneNode(n *Node) *Node {
	children := NewChildren()
	for _, name := range n.Children.Names() {
		child, _ := n.Children.Get(name)
		if pruned := pruneNode(child); pruned != nil {
			children.Set(name, pruned)
		}
	}
	pruned := &Node{
		Group:    n.Group,
		Children: children,
		Tokens:   n.Tokens,
	}
	if pruned.IsEmpty() {
		return nil
	}
	return pruned
}
