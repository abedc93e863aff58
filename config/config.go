/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokenclass.
package config

import (
	"strings"

	"bennypowers.dev/tokenclass/token"
)

// Category names accepted in Categories.
const (
	CategoryColor      = "color"
	CategoryTypography = "typography"
	CategoryShadow     = "shadow"
)

// Config represents the generator configuration.
type Config struct {
	// GenerateDisclaimer prepends an auto-generated banner to every file.
	GenerateDisclaimer bool `yaml:"generateDisclaimer" json:"generateDisclaimer"`

	// Disclaimer replaces the default banner text.
	Disclaimer string `yaml:"disclaimer" json:"disclaimer"`

	// Out is the directory generated files are written under.
	Out string `yaml:"out" json:"out" validate:"required"`

	// BasePath is the directory below Out holding the category directories.
	// It is also the path of generated files inside PackageName.
	BasePath string `yaml:"basePath" json:"basePath"`

	// ColorPath, TypographyPath and ShadowPath are the category
	// directories below BasePath.
	ColorPath      string `yaml:"colorPath" json:"colorPath"`
	TypographyPath string `yaml:"typographyPath" json:"typographyPath"`
	ShadowPath     string `yaml:"shadowPath" json:"shadowPath"`

	// CreateUnifiedColorFile adds a master color class referencing every
	// color group class.
	CreateUnifiedColorFile bool `yaml:"createUnifiedColorFile" json:"createUnifiedColorFile"`

	// UnifiedColorClassName is the display name of the master color class.
	// It is named like a group, so "App Colors" yields class AppColors in
	// file app_colors.
	UnifiedColorClassName string `yaml:"unifiedColorClassName" json:"unifiedColorClassName" validate:"required_if=CreateUnifiedColorFile true"`

	// CustomIdentifiers are escaped like language keywords.
	CustomIdentifiers []string `yaml:"customIdentifiers" json:"customIdentifiers" validate:"dive,identifier"`

	// UseColorSuffix appends ColorSuffix to every color field.
	UseColorSuffix bool `yaml:"useColorSuffix" json:"useColorSuffix"`

	// ColorSuffix is the literal color field suffix.
	ColorSuffix string `yaml:"colorSuffix" json:"colorSuffix" validate:"required_if=UseColorSuffix true,omitempty,identifier"`

	// Snapshots are the snapshot files to load (paths or globs).
	Snapshots []string `yaml:"snapshots" json:"snapshots" validate:"dive,required"`

	// PackageName is the Flutter package generated files belong to.
	PackageName string `yaml:"packageName" json:"packageName" validate:"omitempty,identifier"`

	// FontSizePrefix prefixes font sizes in text styles.
	FontSizePrefix string `yaml:"fontSizePrefix" json:"fontSizePrefix" validate:"omitempty,identifier"`

	// FieldCasing selects field name casing: camel, capitalized or pascal.
	FieldCasing string `yaml:"fieldCasing" json:"fieldCasing" validate:"omitempty,fieldcasing"`

	// NumericPrefix is prepended to purely numeric names.
	NumericPrefix string `yaml:"numericPrefix" json:"numericPrefix" validate:"required,identifier"`

	// PruneEmptyGroups drops groups without tokens before generating.
	PruneEmptyGroups bool `yaml:"pruneEmptyGroups" json:"pruneEmptyGroups"`

	// Categories restricts the generated categories.
	Categories []string `yaml:"categories" json:"categories" validate:"dive,oneof=color typography shadow"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Out:                   "lib",
		ColorPath:             "colors",
		TypographyPath:        "typography",
		ShadowPath:            "shadows",
		UnifiedColorClassName: "AppColors",
		ColorSuffix:           "Color",
		FontSizePrefix:        "h",
		FieldCasing:           "camel",
		NumericPrefix:         "lvl",
		PruneEmptyGroups:      true,
	}
}

// CategoryTypes returns the token types of the configured categories, in
// the order given. It returns nil when no categories are configured.
func (c *Config) CategoryTypes() []token.Type {
	var types []token.Type
	for _, name := range c.Categories {
		switch strings.ToLower(name) {
		case CategoryColor:
			types = append(types, token.Color)
		case CategoryTypography:
			types = append(types, token.Typography)
		case CategoryShadow:
			types = append(types, token.Shadow)
		}
	}
	return types
}

// ActiveColorSuffix returns ColorSuffix when the suffix mode is enabled.
func (c *Config) ActiveColorSuffix() string {
	if !c.UseColorSuffix {
		return ""
	}
	return c.ColorSuffix
}
