/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"math"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Lookup resolves token identities, typically an Index.
type Lookup interface {
	Lookup(id string) (*Token, bool)
}

// ColorHex returns the token's literal color as upper-case AARRGGBB hex
// digits without prefix. It returns "" when the token has no literal
// color or the literal cannot be parsed.
//
// A source value of "#0000FFFF" (RRGGBBAA) yields "FF0000FF".
func ColorHex(t *Token) string {
	if t == nil {
		return ""
	}
	lit, ok := colorLiteral(t.Value)
	if !ok {
		return ""
	}
	return HexToARGB(lit)
}

// ResolveColorHex returns the token's color like ColorHex, following
// referencedTokenId links through lookup when a token carries no literal
// value. It returns "" on a reference cycle, a dangling reference, or a
// token with neither a literal nor a reference.
func ResolveColorHex(t *Token, lookup Lookup) string {
	visited := make(map[string]struct{})
	for cur := t; cur != nil; {
		if _, seen := visited[cur.ID]; seen {
			return ""
		}
		visited[cur.ID] = struct{}{}

		if lit, ok := colorLiteral(cur.Value); ok {
			return HexToARGB(lit)
		}

		ref, ok := ReferencedTokenID(cur)
		if !ok || lookup == nil {
			return ""
		}
		next, ok := lookup.Lookup(ref)
		if !ok {
			return ""
		}
		cur = next
	}
	return ""
}

// ReferencedTokenID returns the identity of the token this token aliases.
func ReferencedTokenID(t *Token) (string, bool) {
	if t == nil {
		return "", false
	}
	ref, ok := field(t.Value, "referencedTokenId")
	if !ok {
		return "", false
	}
	id, ok := ref.(string)
	return id, ok && id != ""
}

// HexToARGB parses a css color literal and formats it alpha-first as
// upper-case AARRGGBB. Returns "" if the literal does not parse.
func HexToARGB(literal string) string {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return ""
	}
	c, err := csscolorparser.Parse(literal)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%02X%02X%02X%02X", channel(c.A), channel(c.R), channel(c.G), channel(c.B))
}

func colorLiteral(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, s != ""
	}
	for _, key := range []string{"hex", "value"} {
		if inner, ok := field(v, key); ok {
			if s, ok := inner.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// channel converts a 0-1 component to 0-255.
func channel(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
}
