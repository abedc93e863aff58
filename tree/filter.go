/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree

import "bennypowers.dev/tokenclass/token"

// FilterByType keeps the roots whose category equals typ. Nested nodes are
// kept as they are: Build only attaches children of the same category.
func FilterByType(t Tree, typ token.Type) Tree {
	var roots []*Node
	for _, root := range t.Roots {
		if root.Type().Equal(typ) {
			roots = append(roots, root)
		}
	}
	return Tree{Roots: roots}
}
