/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented outline of the tree to w.
func Fprint(w io.Writer, t Tree) error {
	for _, root := range t.Roots {
		if err := fprintNode(w, root, 0); err != nil {
			return err
		}
	}
	return nil
}

func fprintNode(w io.Writer, n *Node, level int) error {
	indent := strings.Repeat("  ", level)
	if _, err := fmt.Fprintf(w, "%s- Group: %s\n", indent, n.Name()); err != nil {
		return err
	}
	for _, t := range n.Tokens {
		if _, err := fmt.Fprintf(w, "%s  • Token: %s | Type: %s\n", indent, t.Name, t.Type); err != nil {
			return err
		}
	}
	for _, child := range n.Children.Nodes() {
		if err := fprintNode(w, child, level+1); err != nil {
			return err
		}
	}
	return nil
}
