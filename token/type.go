/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Kind is one of the closed set of token categories.
type Kind int

const (
	// KindUnknown marks a category string that matched no known kind.
	KindUnknown Kind = iota
	KindColor
	KindTypography
	KindShadow
	KindBorder
	KindGradient
	KindBlur
	KindBorderRadius
	KindBorderWidth
	KindDuration
	KindFontSize
	KindDimension
	KindLetterSpacing
	KindLineHeight
	KindOpacity
	KindParagraphSpacing
	KindSize
	KindSpace
	KindZIndex
	KindTextDecoration
	KindTextCase
	KindVisibility
	KindFontFamily
	KindFontWeight
	KindString
	KindProductCopy
)

var kindNames = map[Kind]string{
	KindUnknown:          "Unknown",
	KindColor:            "Color",
	KindTypography:       "Typography",
	KindShadow:           "Shadow",
	KindBorder:           "Border",
	KindGradient:         "Gradient",
	KindBlur:             "Blur",
	KindBorderRadius:     "BorderRadius",
	KindBorderWidth:      "BorderWidth",
	KindDuration:         "Duration",
	KindFontSize:         "FontSize",
	KindDimension:        "Dimension",
	KindLetterSpacing:    "LetterSpacing",
	KindLineHeight:       "LineHeight",
	KindOpacity:          "Opacity",
	KindParagraphSpacing: "ParagraphSpacing",
	KindSize:             "Size",
	KindSpace:            "Space",
	KindZIndex:           "ZIndex",
	KindTextDecoration:   "TextDecoration",
	KindTextCase:         "TextCase",
	KindVisibility:       "Visibility",
	KindFontFamily:       "FontFamily",
	KindFontWeight:       "FontWeight",
	KindString:           "String",
	KindProductCopy:      "ProductCopy",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		if k != KindUnknown {
			m[name] = k
		}
	}
	return m
}()

// String returns the canonical category name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Type is the resolved category of a token or group.
// A known Type carries only its Kind. An unknown Type keeps the raw
// category string it was parsed from.
type Type struct {
	kind Kind
	raw  string
}

// Known returns the Type for a known kind.
func Known(k Kind) Type {
	return Type{kind: k}
}

// Unknown wraps an unrecognized category string.
func Unknown(raw string) Type {
	return Type{kind: KindUnknown, raw: raw}
}

// Convenience values for the categories the generators handle.
var (
	Color      = Known(KindColor)
	Typography = Known(KindTypography)
	Shadow     = Known(KindShadow)
)

// ParseType maps a raw category string to a known Type by exact match,
// or wraps it as unknown.
func ParseType(raw string) Type {
	if k, ok := kindsByName[raw]; ok {
		return Known(k)
	}
	return Unknown(raw)
}

// Kind returns the kind, KindUnknown for unknown types.
func (t Type) Kind() Kind {
	return t.kind
}

// IsUnknown reports whether t wraps an unrecognized category.
func (t Type) IsUnknown() bool {
	return t.kind == KindUnknown
}

// Raw returns the original string of an unknown type, or the canonical
// name of a known one.
func (t Type) Raw() string {
	if t.IsUnknown() {
		return t.raw
	}
	return t.kind.String()
}

// Equal reports whether two types denote the same category.
// Unknown types are equal only to unknown types with the same raw string.
func (t Type) Equal(other Type) bool {
	if t.IsUnknown() || other.IsUnknown() {
		return t.IsUnknown() && other.IsUnknown() && t.raw == other.raw
	}
	return t.kind == other.kind
}

// String returns "Unknown:<raw>" for unknown types and the kind name otherwise.
func (t Type) String() string {
	if t.IsUnknown() {
		return "Unknown:" + t.raw
	}
	return t.kind.String()
}
