/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"strconv"
	"strings"
)

// field returns v[key] when v is a decoded object.
func field(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		val, ok := m[key]
		return val, ok && val != nil
	case map[any]any:
		val, ok := m[key]
		return val, ok && val != nil
	}
	return nil, false
}

// number reads a numeric payload. Objects of the form {"measure": n}
// are unwrapped, as are numeric strings.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	if m, ok := field(v, "measure"); ok {
		return number(m)
	}
	return 0, false
}

// text reads a string payload. Objects of the form {"text": s} or
// {"value": s} are unwrapped, and numbers are formatted.
func text(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, s != ""
	case float64, float32, int, int64, uint64, json.Number:
		f, _ := number(s)
		return FormatNumber(f), true
	}
	for _, key := range []string{"text", "value"} {
		if inner, ok := field(v, key); ok {
			return text(inner)
		}
	}
	return "", false
}

// FormatNumber renders f in its shortest form without exponent
// (16, 0.5, 1.25).
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
