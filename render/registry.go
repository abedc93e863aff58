/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"fmt"

	"bennypowers.dev/tokenclass/token"
)

// Registry maps token categories to their renderers.
type Registry struct {
	renderers map[token.Kind]TokenRenderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[token.Kind]TokenRenderer)}
}

// Register sets the renderer for kind, replacing any previous one.
func (r *Registry) Register(kind token.Kind, fn TokenRenderer) {
	r.renderers[kind] = fn
}

// Render dispatches tok to the renderer registered for its category.
// Unknown categories and categories without a renderer are errors.
func (r *Registry) Render(tok *token.Token, ctx Context) (string, error) {
	if tok.Type.IsUnknown() {
		return "", fmt.Errorf("%w: %s (token %q)", ErrUnknownTokenType, tok.Type.Raw(), tok.Name)
	}
	fn, ok := r.renderers[tok.Type.Kind()]
	if !ok {
		return "", fmt.Errorf("%w: %s (token %q)", ErrNoRenderer, tok.Type, tok.Name)
	}
	return fn(tok, ctx), nil
}
