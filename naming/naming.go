/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming turns token and group names into identifiers for the
// generated sources: sanitizing, keyword escaping and casing, governed by
// per-target rule sets.
package naming

import "fmt"

// Target is the kind of identifier being generated.
type Target int

const (
	TargetClass Target = iota
	TargetField
	TargetFile
)

func (t Target) String() string {
	switch t {
	case TargetClass:
		return "class"
	case TargetField:
		return "field"
	case TargetFile:
		return "file"
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

// Casing is a casing transform.
type Casing int

const (
	Pascal Casing = iota
	Camel
	Snake
	CapitalizedFirst
)

// Apply runs the transform on s.
func (c Casing) Apply(s string) string {
	switch c {
	case Pascal:
		return ToPascalCase(s)
	case Camel:
		return ToCamelCase(s)
	case Snake:
		return ToSnakeCase(s)
	case CapitalizedFirst:
		return CapitalizeFirst(s)
	default:
		return s
	}
}

// RuleSet governs one target: whether to sanitize, and the casings to
// apply in order afterwards.
type RuleSet struct {
	Sanitize bool
	Casings  []Casing
}

// Rules maps each target to its rule set.
type Rules map[Target]RuleSet

// FieldCasing selects the field naming variant.
type FieldCasing string

const (
	// FieldCamel produces camelCase fields ("accent", "brandPrimary").
	FieldCamel FieldCasing = "camel"

	// FieldCapitalized applies camelCase then capitalizes the first letter.
	FieldCapitalized FieldCasing = "capitalized"

	// FieldPascal produces PascalCase fields.
	FieldPascal FieldCasing = "pascal"
)

// DefaultRules returns the rule sets for the given field variant:
// classes Pascal, files snake, fields per variant. Every target sanitizes.
func DefaultRules(fields FieldCasing) Rules {
	fieldCasings := []Casing{Camel}
	switch fields {
	case FieldCapitalized:
		fieldCasings = []Casing{Camel, CapitalizedFirst}
	case FieldPascal:
		fieldCasings = []Casing{Pascal}
	}
	return Rules{
		TargetClass: {Sanitize: true, Casings: []Casing{Pascal}},
		TargetField: {Sanitize: true, Casings: fieldCasings},
		TargetFile:  {Sanitize: true, Casings: []Casing{Snake}},
	}
}

// Generator produces identifiers from display names. It is safe for
// concurrent use once built.
type Generator struct {
	// Rules per target. Targets without a rule are passed through untouched.
	Rules Rules

	// Keywords are the reserved words of the target language.
	Keywords Keywords

	// Custom are user-supplied identifiers treated as reserved as well.
	Custom Keywords

	// NumericPrefix is prepended to purely numeric names.
	NumericPrefix string
}

// NewGenerator returns a Generator with DefaultRules(FieldCamel),
// LevelPrefix, and custom identifiers reserved alongside keywords.
func NewGenerator(keywords Keywords, custom []string) *Generator {
	return &Generator{
		Rules:         DefaultRules(FieldCamel),
		Keywords:      keywords,
		Custom:        NewKeywords(custom...),
		NumericPrefix: LevelPrefix,
	}
}

// Identifier generates the name of input for target and wraps it with the
// literal prefix and suffix.
func (g *Generator) Identifier(input string, target Target, prefix, suffix string) string {
	rule := g.Rules[target]
	base := input
	if rule.Sanitize {
		base = SanitizeIdentifier(base, g.NumericPrefix, g.Keywords, g.Custom)
	}
	for _, c := range rule.Casings {
		base = c.Apply(base)
	}
	return prefix + base + suffix
}

// Class names a class, qualified by prefix (usually the parent class).
func (g *Generator) Class(input, prefix string) string {
	return g.Identifier(input, TargetClass, prefix, "")
}

// Field names a field.
func (g *Generator) Field(input string) string {
	return g.Identifier(input, TargetField, "", "")
}

// File names a generated file, without extension.
func (g *Generator) File(input string) string {
	return g.Identifier(input, TargetFile, "", "")
}
