// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

type rule struct {
	name  string
	check func(value string) error
}

// FieldRule is the ordered list of rules attached to one field.
// Only the first failing rule of a field is reported.
type FieldRule struct {
	name     string
	required bool
	rules    []rule
}

// FieldRules is a [Validator] over named string fields.
// It is built once and is safe for concurrent use afterwards.
type FieldRules struct {
	fields []*FieldRule
}

// New returns an empty rule set.
func New() *FieldRules {
	return &FieldRules{}
}

// Field registers a field and returns its rule builder.
func (v *FieldRules) Field(name string) *FieldRule {
	f := &FieldRule{name: name}
	v.fields = append(v.fields, f)
	return f
}

// Required fails on empty or whitespace-only values. Fields without Required
// skip the remaining rules when empty.
func (f *FieldRule) Required() *FieldRule {
	f.required = true
	return f
}

// Number requires the value to parse as a base-10 integer.
func (f *FieldRule) Number() *FieldRule {
	return f.add("number", func(value string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
			return ErrNotNumber
		}
		return nil
	})
}

// Range requires an integer value within [minValue, maxValue].
func (f *FieldRule) Range(minValue, maxValue int) *FieldRule {
	return f.add("range", func(value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return ErrNotNumber
		}
		if n < minValue || n > maxValue {
			return fmt.Errorf("%w [%d, %d]", ErrOutOfRange, minValue, maxValue)
		}
		return nil
	})
}

// MinLength requires at least n characters.
func (f *FieldRule) MinLength(n int) *FieldRule {
	return f.add("min_length", func(value string) error {
		if utf8.RuneCountInString(value) < n {
			return fmt.Errorf("%w: minimum %d characters", ErrTooShort, n)
		}
		return nil
	})
}

// MaxLength allows at most n characters.
func (f *FieldRule) MaxLength(n int) *FieldRule {
	return f.add("max_length", func(value string) error {
		if utf8.RuneCountInString(value) > n {
			return fmt.Errorf("%w: maximum %d characters", ErrTooLong, n)
		}
		return nil
	})
}

// MaxBytes allows at most n bytes. bcrypt silently truncates longer input.
func (f *FieldRule) MaxBytes(n int) *FieldRule {
	return f.add("max_bytes", func(value string) error {
		if len(value) > n {
			return fmt.Errorf("%w: maximum %d bytes", ErrTooLong, n)
		}
		return nil
	})
}

// OneOf requires the value to be one of allowed.
func (f *FieldRule) OneOf(allowed ...string) *FieldRule {
	return f.add("one_of", func(value string) error {
		if !slices.Contains(allowed, value) {
			return fmt.Errorf("%w (allowed: %s)", ErrNotAllowed, strings.Join(allowed, ", "))
		}
		return nil
	})
}

// Custom attaches an arbitrary check under the given rule name.
func (f *FieldRule) Custom(name string, check func(value string) error) *FieldRule {
	return f.add(name, check)
}

func (f *FieldRule) add(name string, check func(string) error) *FieldRule {
	f.rules = append(f.rules, rule{name: name, check: check})
	return f
}

func (f *FieldRule) validate(value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		if f.required {
			return &FieldError{Field: f.name, Rule: "required", Err: ErrRequired}
		}
		return nil
	}

	for _, r := range f.rules {
		if err := r.check(value); err != nil {
			return &FieldError{Field: f.name, Rule: r.name, Err: err}
		}
	}

	return nil
}

// Validate checks input against the registered rules. input must be a
// map[string]string or a [Fielder]; missing keys are treated as empty values.
// When fields are given, only those fields are checked.
//
// All failures are joined with [errors.Join]; nil means the input is valid.
func (v *FieldRules) Validate(_ context.Context, input any, fields ...string) error {
	var values map[string]string
	switch in := input.(type) {
	case map[string]string:
		values = in
	case Fielder:
		values = in.Fields()
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}

	selected := v.fields
	if len(fields) > 0 {
		selected = make([]*FieldRule, 0, len(fields))
		for _, name := range fields {
			f := v.lookup(name)
			if f == nil {
				return fmt.Errorf("%w: %s", ErrUnknownField, name)
			}
			selected = append(selected, f)
		}
	}

	var errs []error
	for _, f := range selected {
		if fieldErr := f.validate(values[f.name]); fieldErr != nil {
			errs = append(errs, fieldErr)
		}
	}

	return errors.Join(errs...)
}

func (v *FieldRules) lookup(name string) *FieldRule {
	for _, f := range v.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}
