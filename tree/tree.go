/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tree builds the group hierarchy of a token snapshot and derives
// filtered and pruned views of it. Every operation returns a new Tree.
package tree

import "bennypowers.dev/tokenclass/token"

// Node is one group in hierarchical form.
type Node struct {
	// Group is the group this node represents.
	Group *token.Group

	// Children are keyed by child display name, in insertion order.
	Children *Children

	// Tokens are owned directly by this group.
	Tokens []*token.Token
}

func newNode(g *token.Group) *Node {
	return &Node{Group: g, Children: NewChildren()}
}

// Name returns the group's display name.
func (n *Node) Name() string {
	return n.Group.Name
}

// Type returns the group's category.
func (n *Node) Type() token.Type {
	return n.Group.Type
}

// IsEmpty reports whether the node has neither tokens nor children.
func (n *Node) IsEmpty() bool {
	return len(n.Tokens) == 0 && n.Children.Len() == 0
}

// Tree is a forest of root nodes.
type Tree struct {
	Roots []*Node
}

// Children is an insertion-ordered map from display name to node.
// Setting an existing name replaces the node but keeps its position.
type Children struct {
	names []string
	nodes map[string]*Node
}

// NewChildren returns an empty child map.
func NewChildren() *Children {
	return &Children{nodes: make(map[string]*Node)}
}

// Set stores node under name.
func (c *Children) Set(name string, node *Node) {
	if _, exists := c.nodes[name]; !exists {
		c.names = append(c.names, name)
	}
	c.nodes[name] = node
}

// Get returns the node stored under name.
func (c *Children) Get(name string) (*Node, bool) {
	if c == nil {
		return nil, false
	}
	n, ok := c.nodes[name]
	return n, ok
}

// Len returns the number of children.
func (c *Children) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Names returns child names in insertion order.
func (c *Children) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Nodes returns child nodes in insertion order.
func (c *Children) Nodes() []*Node {
	if c == nil {
		return nil
	}
	out := make([]*Node, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.nodes[name])
	}
	return out
}
