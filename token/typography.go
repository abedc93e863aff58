/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// TypographyStyle holds the typography properties present on a token.
// Absent properties are left at their zero value; Has* report presence
// for numeric ones.
type TypographyStyle struct {
	FontFamily     string
	FontWeight     string
	FontSize       float64
	LetterSpacing  float64
	LineHeight     float64
	TextDecoration string
	TextCase       string

	HasFontSize      bool
	HasLetterSpacing bool
	HasLineHeight    bool
}

// TypographyOf extracts the typography style of a token.
// It returns false when the token carries no typography object.
func TypographyOf(t *Token) (*TypographyStyle, bool) {
	if t == nil || t.Value == nil {
		return nil, false
	}
	if _, ok := t.Value.(map[string]any); !ok {
		if _, ok := t.Value.(map[any]any); !ok {
			return nil, false
		}
	}

	style := &TypographyStyle{}
	if v, ok := field(t.Value, "fontFamily"); ok {
		style.FontFamily, _ = text(v)
	}
	if v, ok := field(t.Value, "fontWeight"); ok {
		style.FontWeight, _ = text(v)
	}
	if v, ok := field(t.Value, "fontSize"); ok {
		style.FontSize, style.HasFontSize = number(v)
	}
	if v, ok := field(t.Value, "letterSpacing"); ok {
		style.LetterSpacing, style.HasLetterSpacing = number(v)
	}
	if v, ok := field(t.Value, "lineHeight"); ok {
		style.LineHeight, style.HasLineHeight = number(v)
	}
	if v, ok := field(t.Value, "textDecoration"); ok {
		style.TextDecoration, _ = text(v)
	}
	if v, ok := field(t.Value, "textCase"); ok {
		style.TextCase, _ = text(v)
	}
	return style, true
}

// HeightRatio returns line height divided by font size. It reports false
// when either is absent or the font size is zero.
func (s *TypographyStyle) HeightRatio() (float64, bool) {
	if !s.HasLineHeight || !s.HasFontSize || s.FontSize == 0 {
		return 0, false
	}
	return s.LineHeight / s.FontSize, true
}
