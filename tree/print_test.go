/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenclass/token"
	"bennypowers.dev/tokenclass/tree"
)

func TestFprint(t *testing.T) {
	in := tree.Build(
		[]*token.Group{group("g1", "Brand", ""), group("g2", "Primary", "g1")},
		[]*token.Token{tok("t1", "base", "g1"), tok("t2", "accent", "g2")},
	)

	var buf bytes.Buffer
	require.NoError(t, tree.Fprint(&buf, in))

	want := "- Group: Brand\n" +
		"  • Token: base | Type: Color\n" +
		"  - Group: Primary\n" +
		"    • Token: accent | Type: Color\n"
	assert.Equal(t, want, buf.String())
}

func TestFprint_UnknownType(t *testing.T) {
	in := tree.Build(
		[]*token.Group{group("g1", "Odd", "", token.Unknown("Sparkle"))},
		[]*token.Token{tok("t1", "x", "g1", token.Unknown("Sparkle"))},
	)

	var buf bytes.Buffer
	require.NoError(t, tree.Fprint(&buf, in))
	assert.Equal(t, "- Group: Odd\n  • Token: x | Type: Unknown:Sparkle\n", buf.String())
}
