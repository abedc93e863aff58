/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenclass/naming"
	"bennypowers.dev/tokenclass/token"
	"bennypowers.dev/tokenclass/tree"
)

func sample() (tree.Tree, token.Index) {
	groups := []*token.Group{
		{ID: "c", Name: "Colors", Type: token.Color},
		{ID: "b", Name: "Brand Primary", ParentID: "c", Type: token.Color},
		{ID: "ty", Name: "Type", Type: token.Typography},
	}
	tokens := []*token.Token{
		{ID: "t1", Name: "accent", GroupID: "b", Type: token.Color, Value: "#FF8000FF"},
		{ID: "t2", Name: "link hover", GroupID: "b", Type: token.Color, Value: map[string]any{"referencedTokenId": "t1"}},
		{ID: "t3", Name: "class", GroupID: "c", Type: token.Color, Value: "#000000"},
		{ID: "t4", Name: "h1", GroupID: "ty", Type: token.Typography, Value: map[string]any{
			"fontFamily": "Inter", "fontWeight": "700", "fontSize": 32.0,
		}},
	}
	return tree.Build(groups, tokens), token.NewIndex(tokens)
}

func TestRows(t *testing.T) {
	tr, index := sample()
	namer := naming.NewGenerator(naming.DartKeywords, nil)

	t.Run("unresolved", func(t *testing.T) {
		rows := Rows(tr, namer, nil, "")
		want := []Row{
			{Group: "Colors", Name: "class", Field: "classtoken", Type: "Color", Value: "0xFF000000"},
			{Group: "Colors/Brand Primary", Name: "accent", Field: "accent", Type: "Color", Value: "0xFFFF8000"},
			{Group: "Colors/Brand Primary", Name: "link hover", Field: "linkHover", Type: "Color", Value: "{t1}"},
			{Group: "Type", Name: "h1", Field: "h1", Type: "Typography", Value: "Inter 700 32"},
		}
		if len(rows) != len(want) {
			t.Fatalf("expected %d rows, got %d: %+v", len(want), len(rows), rows)
		}
		for i := range want {
			if rows[i] != want[i] {
				t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
			}
		}
	})

	t.Run("resolved", func(t *testing.T) {
		rows := Rows(tr, namer, index, "")
		if rows[2].Value != "0xFFFF8000" {
			t.Errorf("expected resolved alias, got %q", rows[2].Value)
		}
	})

	t.Run("filtered", func(t *testing.T) {
		rows := Rows(tree.FilterByType(tr, token.Typography), namer, nil, "")
		if len(rows) != 1 || rows[0].Name != "h1" {
			t.Errorf("expected only h1, got %+v", rows)
		}
	})

	t.Run("color suffix", func(t *testing.T) {
		rows := Rows(tr, namer, nil, "Color")
		want := []string{"classtokenColor", "accentColor", "linkHoverColor", "h1"}
		for i, field := range want {
			if rows[i].Field != field {
				t.Errorf("row %d field = %q, want %q", i, rows[i].Field, field)
			}
		}
	})
}

func TestWrite(t *testing.T) {
	rows := []Row{{Group: "Colors", Name: "accent", Field: "accent", Type: "Color", Value: "0xFFFF8000"}}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, rows, "table"); err != nil {
			t.Fatal(err)
		}
		want := "Colors                         accent                   Color        0xFFFF8000\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, rows, "json"); err != nil {
			t.Fatal(err)
		}
		var got []Row
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0] != rows[0] {
			t.Errorf("unexpected json rows %+v", got)
		}
	})

	t.Run("json empty", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, nil, "json"); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "[]\n" {
			t.Errorf("got %q, want empty array", buf.String())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, rows, "yaml"); err != nil {
			t.Fatal(err)
		}
		var got []Row
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Field != "accent" {
			t.Errorf("unexpected yaml rows %+v", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := Write(&bytes.Buffer{}, rows, "xml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
