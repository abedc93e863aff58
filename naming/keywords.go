/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming

// Keywords is a set of reserved identifiers.
type Keywords map[string]struct{}

// NewKeywords builds a keyword set from words.
func NewKeywords(words ...string) Keywords {
	k := make(Keywords, len(words))
	for _, w := range words {
		k[w] = struct{}{}
	}
	return k
}

// Has reports whether word is reserved.
func (k Keywords) Has(word string) bool {
	_, ok := k[word]
	return ok
}

// DartKeywords are the reserved words of the Dart back end, plus member
// names that clash with Flutter widgets when used as fields.
var DartKeywords = NewKeywords(
	"abstract", "else", "import", "super", "as", "enum", "in", "switch", "assert",
	"export", "interface", "sync", "async", "extends", "is", "this", "await",
	"extension", "late", "throw", "break", "external", "library", "true", "case",
	"factory", "mixin", "try", "catch", "false", "new", "typedef", "class", "final",
	"null", "var", "const", "finally", "on", "void", "continue", "for", "operator",
	"while", "covariant", "Function", "part", "with", "default", "get", "required",
	"yield", "deferred", "hide", "rethrow", "do", "if", "return", "dynamic",
	"implements", "set", "title", "error", "shadow",
)
