/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming

import (
	"regexp"
	"strings"
)

// KeywordSuffix is appended to identifiers that collide with a keyword.
const KeywordSuffix = "Token"

// Prefixes for purely numeric identifiers. Group levels use LevelPrefix,
// color names use ColorPrefix.
const (
	LevelPrefix = "lvl"
	ColorPrefix = "clr"
)

var (
	ampersandPattern  = regexp.MustCompile(`&(\w)?`)
	nonIdentPattern   = regexp.MustCompile(`[^A-Za-z0-9]`)
	onlyDigitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

// Sanitize turns an arbitrary name into a safe identifier:
// "&x" becomes "AndX", every other character outside [A-Za-z0-9] becomes
// "_", and a purely numeric result gets numericPrefix prepended.
func Sanitize(name, numericPrefix string) string {
	clean := ampersandPattern.ReplaceAllStringFunc(name, func(m string) string {
		return "And" + strings.ToUpper(strings.TrimPrefix(m, "&"))
	})
	clean = nonIdentPattern.ReplaceAllString(clean, "_")
	if onlyDigitsPattern.MatchString(clean) {
		clean = numericPrefix + clean
	}
	return clean
}

// AppendSuffixIfKeyword appends suffix when name is a member of any of
// the keyword sets.
func AppendSuffixIfKeyword(name, suffix string, keywords ...Keywords) string {
	for _, k := range keywords {
		if k.Has(name) {
			return name + suffix
		}
	}
	return name
}

// SanitizeIdentifier runs Sanitize and then escapes keywords with
// KeywordSuffix.
func SanitizeIdentifier(name, numericPrefix string, keywords ...Keywords) string {
	return AppendSuffixIfKeyword(Sanitize(name, numericPrefix), KeywordSuffix, keywords...)
}
