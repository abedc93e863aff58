/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate_test

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"testing"

	"bennypowers.dev/tokenclass/generate"
	"bennypowers.dev/tokenclass/render"
	"bennypowers.dev/tokenclass/render/dart"
	"bennypowers.dev/tokenclass/testutil"
	"bennypowers.dev/tokenclass/token"
	"bennypowers.dev/tokenclass/tree"
)

func TestAll_Golden(t *testing.T) {
	g := newGenerator(generate.Options{
		BasePath:       "lib",
		ColorPath:      "colors",
		TypographyPath: "typography",
		ShadowPath:     "shadows",
		PackageName:    "ui_kit",
		Disclaimer:     generate.DefaultDisclaimer,
		Prune:          true,
	}, dart.Options{PackageName: "ui_kit", FontSizePrefix: "h"})

	files, err := g.All(context.Background(), sampleTree())
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}

	var sb strings.Builder
	for _, f := range files {
		fmt.Fprintf(&sb, "== %s ==\n%s", path.Join(f.Path, f.Filename(".dart")), f.Content)
	}
	actual := sb.String()

	goldenPath := "golden/all.golden"
	testutil.UpdateGoldenFile(t, goldenPath, []byte(actual))
	expected := string(testutil.LoadFixtureFile(t, goldenPath))

	if actual != expected {
		t.Errorf("All() output mismatch.\nExpected:\n%s\nActual:\n%s", expected, actual)
	}
}

func TestAll_CategoryOrder(t *testing.T) {
	g := newGenerator(generate.Options{
		Categories: []token.Type{token.Shadow, token.Color},
	}, dart.Options{})

	files, err := g.All(context.Background(), sampleTree())
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	want := []string{"elevation", "brand", "empty"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("All() files = %v, want %v", names, want)
	}
}

func TestAll_FatalErrorStopsRun(t *testing.T) {
	border := token.Known(token.KindBorder)
	in := tree.Build(
		[]*token.Group{group("b0", "Borders", "", border), group("b1", "Thin", "b0", border)},
		[]*token.Token{tok("tb", "hairline", "b1", border, "1px")},
	)
	g := newGenerator(generate.Options{
		Categories: []token.Type{token.Color, border},
	}, dart.Options{})

	files, err := g.All(context.Background(), in)
	if !errors.Is(err, render.ErrNoRenderer) {
		t.Fatalf("All() error = %v, want ErrNoRenderer", err)
	}
	if files != nil {
		t.Errorf("All() files = %v, want nil on error", files)
	}
}

func TestAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := newGenerator(generate.Options{}, dart.Options{})
	if _, err := g.All(ctx, sampleTree()); !errors.Is(err, context.Canceled) {
		t.Errorf("All() error = %v, want context.Canceled", err)
	}
}
