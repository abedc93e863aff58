/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ShadowLayer is one layer of a shadow token.
type ShadowLayer struct {
	R, G, B uint8
	Opacity float64
	X, Y    float64
	Radius  float64
	Spread  float64
}

// ShadowOf extracts the ordered shadow layers of a token. A single layer
// object is accepted as a one-element list. It returns false when the
// token carries no shadow value.
func ShadowOf(t *Token) ([]ShadowLayer, bool) {
	if t == nil || t.Value == nil {
		return nil, false
	}

	var items []any
	switch v := t.Value.(type) {
	case []any:
		items = v
	case map[string]any, map[any]any:
		items = []any{v}
	default:
		return nil, false
	}
	if len(items) == 0 {
		return nil, false
	}

	layers := make([]ShadowLayer, 0, len(items))
	for _, item := range items {
		layers = append(layers, shadowLayer(item))
	}
	return layers, true
}

func shadowLayer(item any) ShadowLayer {
	// A layer with neither opacity nor color alpha is fully opaque.
	layer := ShadowLayer{Opacity: 1}
	opacitySet := false
	if v, ok := field(item, "opacity"); ok {
		if o, ok := number(v); ok {
			layer.Opacity, opacitySet = o, true
		}
	}
	if v, ok := field(item, "color"); ok {
		alpha, hasAlpha := layer.setColor(v)
		if hasAlpha && !opacitySet {
			layer.Opacity = alpha
		}
	}
	if v, ok := field(item, "x"); ok {
		layer.X, _ = number(v)
	}
	if v, ok := field(item, "y"); ok {
		layer.Y, _ = number(v)
	}
	if v, ok := field(item, "radius"); ok {
		layer.Radius, _ = number(v)
	}
	if v, ok := field(item, "spread"); ok {
		layer.Spread, _ = number(v)
	}
	return layer
}

// setColor decodes a hex string or an {r,g,b} object, possibly nested
// under a further "color" key. It returns the hex alpha when present.
func (l *ShadowLayer) setColor(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		return l.setHex(s)
	}
	if inner, ok := field(v, "color"); ok {
		return l.setColor(inner)
	}
	if hex, ok := field(v, "hex"); ok {
		if s, ok := hex.(string); ok {
			return l.setHex(s)
		}
	}
	l.R = component(v, "r")
	l.G = component(v, "g")
	l.B = component(v, "b")
	if a, ok := field(v, "a"); ok {
		return number(a)
	}
	return 0, false
}

func (l *ShadowLayer) setHex(s string) (float64, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var alpha float64
	hasAlpha := false
	if len(s) == 8 {
		if a, err := strconv.ParseUint(s[6:8], 16, 8); err == nil {
			alpha, hasAlpha = float64(a)/255, true
		}
		s = s[:6]
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return 0, false
	}
	l.R, l.G, l.B = c.RGB255()
	return alpha, hasAlpha
}

func component(v any, key string) uint8 {
	raw, ok := field(v, key)
	if !ok {
		return 0
	}
	n, ok := number(raw)
	if !ok || n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
