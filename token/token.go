/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token data model: categories, tokens,
// groups and typed accessors for their raw payloads.
package token

// Token is a single design value owned by a group.
type Token struct {
	// ID is the token's identity within a snapshot.
	ID string

	// Name is the display name used to derive field names.
	Name string

	// GroupID is the identity of the owning group.
	GroupID string

	// Type is the resolved category.
	Type Type

	// Description is optional documentation for the token.
	Description string

	// Value is the category-specific raw payload, as decoded from the
	// snapshot (strings, numbers, maps and slices).
	Value any
}

// Group is a named bucket of tokens. Groups reference their parent by
// identity only.
type Group struct {
	// ID is the group's identity within a snapshot.
	ID string

	// Name is the display name used to derive class, field and file names.
	Name string

	// ParentID is the parent group's identity, empty for root groups.
	ParentID string

	// Type is the resolved category.
	Type Type

	// Description is optional documentation for the group.
	Description string
}

// IsRoot reports whether the group declares no parent.
func (g *Group) IsRoot() bool {
	return g.ParentID == ""
}

// Index maps token identities to tokens.
type Index map[string]*Token

// NewIndex builds an identity index over tokens. Later duplicates win.
func NewIndex(tokens []*Token) Index {
	idx := make(Index, len(tokens))
	for _, t := range tokens {
		idx[t.ID] = t
	}
	return idx
}

// Lookup returns the token with the given identity.
func (idx Index) Lookup(id string) (*Token, bool) {
	t, ok := idx[id]
	return t, ok
}
