/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dart

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenclass/render"
	"bennypowers.dev/tokenclass/token"
)

var namedWeights = map[string]string{
	"thin":       "100",
	"hairline":   "100",
	"extralight": "200",
	"ultralight": "200",
	"light":      "300",
	"regular":    "400",
	"normal":     "400",
	"book":       "400",
	"medium":     "500",
	"semibold":   "600",
	"demibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"ultrabold":  "800",
	"black":      "900",
	"heavy":      "900",
}

// FontWeight maps a weight to its Dart FontWeight constant name, such as
// "w700" for "700" or "Bold". It reports false for unrecognized weights.
func FontWeight(weight string) (string, bool) {
	w := strings.TrimSpace(weight)
	if w == "" {
		return "", false
	}
	if isDigits(w) {
		return "w" + w, true
	}
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(w))
	if n, ok := namedWeights[key]; ok {
		return "w" + n, true
	}
	return "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func decoration(d string) string {
	switch d {
	case "Strikethrough":
		return "lineThrough"
	case "Underline":
		return "underline"
	case "Overline":
		return "overline"
	default:
		return "none"
	}
}

// Typography returns the renderer for typography tokens. Only properties
// present on the token are emitted, in a fixed order.
func Typography(opts Options) render.TokenRenderer {
	return func(tok *token.Token, ctx render.Context) string {
		style, ok := token.TypographyOf(tok)
		if !ok {
			return ""
		}
		level := ctx.Level
		parts := typographyArgs(style, opts)
		body := strings.Join(parts, ",\n"+indent(level+2))
		name := ctx.Namer.Field(tok.Name)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s%sfinal %s = TextStyle(\n", indent(level+1), modifier(ctx.Static), name)
		fmt.Fprintf(&sb, "%s%s,\n", indent(level+2), body)
		fmt.Fprintf(&sb, "%s);\n", indent(level+1))
		return sb.String()
	}
}

func typographyArgs(s *token.TypographyStyle, opts Options) []string {
	var parts []string
	if s.FontFamily != "" {
		parts = append(parts, "fontFamily: "+quote(s.FontFamily))
	}
	if opts.PackageName != "" {
		parts = append(parts, "package: "+quote(opts.PackageName))
	}
	if w, ok := FontWeight(s.FontWeight); ok {
		parts = append(parts, "fontWeight: FontWeight."+w)
	}
	if s.TextCase != "" {
		style := "normal"
		if s.TextCase == "Italic" {
			style = "italic"
		}
		parts = append(parts, "fontStyle: FontStyle."+style)
	}
	if s.HasFontSize {
		parts = append(parts, "fontSize: "+opts.FontSizePrefix+token.FormatNumber(s.FontSize))
	}
	if s.TextDecoration != "" {
		parts = append(parts, "decoration: TextDecoration."+decoration(s.TextDecoration))
	}
	if s.HasLetterSpacing {
		parts = append(parts, "letterSpacing: "+token.FormatNumber(s.LetterSpacing))
	}
	if ratio, ok := s.HeightRatio(); ok {
		parts = append(parts, "height: "+token.FormatNumber(ratio))
	}
	return append(parts, "leadingDistribution: TextLeadingDistribution.even")
}
