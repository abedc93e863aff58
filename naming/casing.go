/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	segmentSeparator = regexp.MustCompile(`[_\-\s]`)
	acronymBoundary  = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundary     = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	dashOrSpaceRun   = regexp.MustCompile(`[\s-]+`)
	underscoreRun    = regexp.MustCompile(`_+`)
)

// segments splits on "_", "-" and whitespace, dropping empty parts.
func segments(s string) []string {
	parts := segmentSeparator.Split(s, -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ToPascalCase upper-cases the first character of each segment and joins
// them. The rest of each segment is kept as is.
func ToPascalCase(s string) string {
	var sb strings.Builder
	for _, part := range segments(s) {
		sb.WriteString(CapitalizeFirst(part))
	}
	return sb.String()
}

// ToCamelCase lower-cases the first segment and capitalizes the others.
func ToCamelCase(s string) string {
	var sb strings.Builder
	for i, part := range segments(s) {
		if i == 0 {
			sb.WriteString(strings.ToLower(part))
			continue
		}
		sb.WriteString(CapitalizeFirst(part))
	}
	return sb.String()
}

// ToSnakeCase splits camelCase and acronym boundaries with "_", collapses
// dashes, whitespace and repeated underscores, and lower-cases the result.
//
//	ToSnakeCase("MyValue")    // my_value
//	ToSnakeCase("HTMLParser") // html_parser
func ToSnakeCase(s string) string {
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = dashOrSpaceRun.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// CapitalizeFirst upper-cases only the first character.
func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
