/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tokenclass/render"
	"bennypowers.dev/tokenclass/token"
)

func TestRegistry_Render(t *testing.T) {
	reg := render.NewRegistry()
	reg.Register(token.KindColor, func(tok *token.Token, ctx render.Context) string {
		if ctx.Static {
			return "static " + tok.Name
		}
		return tok.Name
	})

	tests := []struct {
		name    string
		tok     *token.Token
		static  bool
		want    string
		wantErr error
	}{
		{
			name:   "registered static",
			tok:    &token.Token{Name: "accent", Type: token.Color},
			static: true,
			want:   "static accent",
		},
		{
			name: "registered instance",
			tok:  &token.Token{Name: "accent", Type: token.Color},
			want: "accent",
		},
		{
			name:    "unregistered kind",
			tok:     &token.Token{Name: "h1", Type: token.Typography},
			wantErr: render.ErrNoRenderer,
		},
		{
			name:    "unknown type",
			tok:     &token.Token{Name: "odd", Type: token.Unknown("Sparkle")},
			wantErr: render.ErrUnknownTokenType,
		},
		{
			name:    "unknown type named like a registered kind",
			tok:     &token.Token{Name: "fake", Type: token.Unknown("Color")},
			wantErr: render.ErrUnknownTokenType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Render(tt.tok, render.Context{Static: tt.static})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	reg := render.NewRegistry()
	reg.Register(token.KindColor, func(*token.Token, render.Context) string { return "first" })
	reg.Register(token.KindColor, func(*token.Token, render.Context) string { return "second" })

	got, err := reg.Render(&token.Token{Type: token.Color}, render.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("Render() = %q, want %q", got, "second")
	}
}

func TestConstructor_String(t *testing.T) {
	if render.Private.String() != "private" || render.Public.String() != "public" {
		t.Errorf("unexpected constructor names %q, %q", render.Private, render.Public)
	}
}
