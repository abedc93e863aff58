/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	fieldCasings      = map[string]struct{}{"camel": {}, "capitalized": {}, "pascal": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("fieldcasing", func(fl validator.FieldLevel) bool {
			_, ok := fieldCasings[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration. Every failing field is reported in
// one error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidConfig)
	}
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		other := strings.Fields(fe.Param())[0]
		return fmt.Sprintf("%s is required when %s is set", field, strings.ToLower(other[:1])+other[1:])
	case "identifier":
		return fmt.Sprintf("%s %q is not a valid identifier", field, fe.Value())
	case "fieldcasing":
		return fmt.Sprintf("%s %q must be one of camel, capitalized, pascal", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s %q must be one of %s", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}
