/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dart_test

import (
	"testing"

	"bennypowers.dev/tokenclass/render/dart"
	"bennypowers.dev/tokenclass/token"
)

func TestTypography(t *testing.T) {
	opts := dart.Options{PackageName: "ui_kit", FontSizePrefix: "h"}

	tests := []struct {
		name   string
		opts   dart.Options
		value  any
		static bool
		want   string
	}{
		{
			name: "full style",
			opts: opts,
			value: map[string]any{
				"fontFamily":     map[string]any{"text": "Inter"},
				"fontWeight":     map[string]any{"text": "500"},
				"fontSize":       map[string]any{"measure": 16},
				"letterSpacing":  map[string]any{"measure": 0.5},
				"lineHeight":     map[string]any{"measure": 24},
				"textDecoration": map[string]any{"value": "Underline"},
				"textCase":       map[string]any{"value": "Italic"},
			},
			static: true,
			want: "  static final body = TextStyle(\n" +
				"    fontFamily: 'Inter',\n" +
				"    package: 'ui_kit',\n" +
				"    fontWeight: FontWeight.w500,\n" +
				"    fontStyle: FontStyle.italic,\n" +
				"    fontSize: h16,\n" +
				"    decoration: TextDecoration.underline,\n" +
				"    letterSpacing: 0.5,\n" +
				"    height: 1.5,\n" +
				"    leadingDistribution: TextLeadingDistribution.even,\n" +
				"  );\n",
		},
		{
			name: "sparse style without package",
			opts: dart.Options{FontSizePrefix: "h"},
			value: map[string]any{
				"fontWeight":     "Bold",
				"textCase":       "Original",
				"textDecoration": "Strikethrough",
				"lineHeight":     20,
			},
			want: "  final body = TextStyle(\n" +
				"    fontWeight: FontWeight.w700,\n" +
				"    fontStyle: FontStyle.normal,\n" +
				"    decoration: TextDecoration.lineThrough,\n" +
				"    leadingDistribution: TextLeadingDistribution.even,\n" +
				"  );\n",
		},
		{
			name: "zero font size keeps size but omits height",
			opts: opts,
			value: map[string]any{
				"fontSize":   0,
				"lineHeight": 20,
			},
			want: "  final body = TextStyle(\n" +
				"    package: 'ui_kit',\n" +
				"    fontSize: h0,\n" +
				"    leadingDistribution: TextLeadingDistribution.even,\n" +
				"  );\n",
		},
		{
			name: "font family with quote and dollar is escaped",
			opts: dart.Options{},
			value: map[string]any{
				"fontFamily": `O'Brien \ $Sans`,
			},
			want: "  final body = TextStyle(\n" +
				"    fontFamily: 'O\\'Brien \\\\ \\$Sans',\n" +
				"    leadingDistribution: TextLeadingDistribution.even,\n" +
				"  );\n",
		},
		{
			name:  "absent value is skipped",
			opts:  opts,
			value: nil,
			want:  "",
		},
		{
			name:  "non-object value is skipped",
			opts:  opts,
			value: "Inter 16",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &token.Token{Name: "body", Type: token.Typography, Value: tt.value}
			got, err := newRenderer(tt.opts).RenderToken(tok, tt.static, 0)
			if err != nil {
				t.Fatalf("RenderToken() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderToken() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestFontWeight(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"400", "w400", true},
		{"Bold", "w700", true},
		{"semi-bold", "w600", true},
		{"Extra Light", "w200", true},
		{"Black", "w900", true},
		{"", "", false},
		{"Chunky", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := dart.FontWeight(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FontWeight(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
