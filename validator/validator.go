/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks token snapshots for problems that would
// silently change or drop generated classes.
package validator

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenclass/token"
)

// Severity ranks a validation issue.
type Severity int

const (
	// Warning marks input the generator tolerates with a fallback.
	Warning Severity = iota
	// Error marks input that produces missing or wrong output.
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// ValidationError represents one problem found in a snapshot.
type ValidationError struct {
	Severity Severity
	// Kind is "group" or "token".
	Kind string
	// ID is the identity of the offending group or token.
	ID string
	// Name is its display name.
	Name string
	// Message describes what's wrong.
	Message string
	// Suggestion describes the fallback or an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Severity.String())
	sb.WriteString(": ")
	if e.Kind != "" {
		fmt.Fprintf(&sb, "%s %q (%s): ", e.Kind, e.Name, e.ID)
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks groups and tokens together, since parents and aliases
// may live in other files. Issues are reported in input order.
func Validate(groups []*token.Group, tokens []*token.Token) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateGroups(groups)...)
	errs = append(errs, validateTokens(groups, tokens)...)
	return errs
}

// HasErrors reports whether any issue is at least as severe as min.
func HasErrors(errs []ValidationError, min Severity) bool {
	for _, e := range errs {
		if e.Severity >= min {
			return true
		}
	}
	return false
}

func groupIssue(g *token.Group, sev Severity, msg, suggestion string) ValidationError {
	return ValidationError{Severity: sev, Kind: "group", ID: g.ID, Name: g.Name, Message: msg, Suggestion: suggestion}
}

func tokenIssue(t *token.Token, sev Severity, msg, suggestion string) ValidationError {
	return ValidationError{Severity: sev, Kind: "token", ID: t.ID, Name: t.Name, Message: msg, Suggestion: suggestion}
}

func indexGroups(groups []*token.Group) map[string]*token.Group {
	byID := make(map[string]*token.Group, len(groups))
	for _, g := range groups {
		if g != nil {
			byID[g.ID] = g
		}
	}
	return byID
}

func validateGroups(groups []*token.Group) []ValidationError {
	var errs []ValidationError
	byID := indexGroups(groups)
	seen := make(map[string]bool, len(groups))
	siblings := make(map[[2]string]bool, len(groups))

	for _, g := range groups {
		if g == nil {
			continue
		}
		if seen[g.ID] {
			errs = append(errs, groupIssue(g, Error,
				"group id is declared more than once",
				"the last declaration replaces earlier ones"))
		}
		seen[g.ID] = true

		if g.Type.IsUnknown() {
			errs = append(errs, groupIssue(g, Warning,
				fmt.Sprintf("type %q is not supported", g.Type.Raw()),
				"the group is not generated"))
		}

		if g.IsRoot() {
			continue
		}
		parent, ok := byID[g.ParentID]
		switch {
		case !ok:
			errs = append(errs, groupIssue(g, Warning,
				fmt.Sprintf("parent group %q does not exist", g.ParentID),
				"the group is generated as a top-level group"))
			continue
		case !parent.Type.Equal(g.Type):
			errs = append(errs, groupIssue(g, Warning,
				fmt.Sprintf("type %s differs from parent type %s", g.Type, parent.Type),
				"the group is generated as a top-level group"))
			continue
		case inParentCycle(g, byID):
			errs = append(errs, groupIssue(g, Error,
				"group is its own ancestor",
				"break the parentGroupId cycle; the group is unreachable"))
			continue
		}

		key := [2]string{g.ParentID, g.Name}
		if siblings[key] {
			errs = append(errs, groupIssue(g, Warning,
				fmt.Sprintf("parent %q already has a child named %q", parent.Name, g.Name),
				"the last sibling replaces earlier ones"))
		}
		siblings[key] = true
	}
	return errs
}

// inParentCycle follows same-type parent links from g and reports
// whether they lead back to g.
func inParentCycle(g *token.Group, byID map[string]*token.Group) bool {
	visited := map[string]bool{g.ID: true}
	for cur := g; !cur.IsRoot(); {
		parent, ok := byID[cur.ParentID]
		if !ok || !parent.Type.Equal(cur.Type) {
			return false
		}
		if parent.ID == g.ID {
			return true
		}
		if visited[parent.ID] {
			return false
		}
		visited[parent.ID] = true
		cur = parent
	}
	return false
}

func validateTokens(groups []*token.Group, tokens []*token.Token) []ValidationError {
	var errs []ValidationError
	byID := indexGroups(groups)
	index := token.NewIndex(tokens)
	seen := make(map[string]bool, len(tokens))

	for _, t := range tokens {
		if t == nil {
			continue
		}
		if seen[t.ID] {
			errs = append(errs, tokenIssue(t, Error,
				"token id is declared more than once",
				"aliases resolve to the last declaration"))
		}
		seen[t.ID] = true

		g, ok := byID[t.GroupID]
		switch {
		case !ok:
			errs = append(errs, tokenIssue(t, Warning,
				fmt.Sprintf("group %q does not exist", t.GroupID),
				"the token is dropped"))
			continue
		case !g.Type.Equal(t.Type):
			errs = append(errs, tokenIssue(t, Warning,
				fmt.Sprintf("type %s differs from group type %s", t.Type, g.Type),
				"the token is dropped"))
			continue
		}

		switch t.Type.Kind() {
		case token.KindColor:
			if msg := colorProblem(t, index); msg != "" {
				errs = append(errs, tokenIssue(t, Error, msg, "the color field is omitted"))
			}
		case token.KindTypography:
			if _, ok := token.TypographyOf(t); !ok {
				errs = append(errs, tokenIssue(t, Error, "typography value is missing", "the text style is omitted"))
			}
		case token.KindShadow:
			if layers, ok := token.ShadowOf(t); !ok || len(layers) == 0 {
				errs = append(errs, tokenIssue(t, Warning, "shadow has no layers", "the shadow field is omitted"))
			}
		}
	}
	return errs
}

// colorProblem explains why a color token does not resolve, or returns "".
func colorProblem(t *token.Token, index token.Index) string {
	if token.ResolveColorHex(t, index) != "" {
		return ""
	}
	visited := map[string]bool{}
	for cur := t; ; {
		if visited[cur.ID] {
			return fmt.Sprintf("color alias cycle through %q", cur.ID)
		}
		visited[cur.ID] = true
		ref, ok := token.ReferencedTokenID(cur)
		if !ok {
			if cur == t {
				return "color value is missing or malformed"
			}
			return fmt.Sprintf("aliased token %q has no valid color", cur.ID)
		}
		next, ok := index.Lookup(ref)
		if !ok {
			return fmt.Sprintf("aliased token %q does not exist", ref)
		}
		cur = next
	}
}
