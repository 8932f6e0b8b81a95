// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type fielder map[string]string

func (f fielder) Fields() map[string]string { return f }

func portRules() *FieldRules {
	v := New()
	v.Field("port").Required().Number().Range(1, 65535)
	v.Field("driver").OneOf("pgx", "sqlite3")
	return v
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := portRules()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("map input", func(t *testing.T) {
		err := v.Validate(ctx, map[string]string{"port": "8080"})
		require.NoError(t, err)
	})

	t.Run("Fielder input", func(t *testing.T) {
		err := v.Validate(ctx, fielder{"port": "8080", "driver": "pgx"})
		require.NoError(t, err)
	})

	t.Run("unknown field in restriction list", func(t *testing.T) {
		err := v.Validate(ctx, map[string]string{"port": "8080"}, "host")
		require.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("restriction skips other fields", func(t *testing.T) {
		err := v.Validate(ctx, map[string]string{"driver": "mysql"}, "driver")
		require.ErrorIs(t, err, ErrNotAllowed)
		assert.NotErrorIs(t, err, ErrRequired)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Rules
// ---------------------------------------------------------------------------

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]string
		wantErr error
	}{
		{name: "missing port", input: map[string]string{}, wantErr: ErrRequired},
		{name: "blank port", input: map[string]string{"port": "  "}, wantErr: ErrRequired},
		{name: "non numeric port", input: map[string]string{"port": "http"}, wantErr: ErrNotNumber},
		{name: "zero port", input: map[string]string{"port": "0"}, wantErr: ErrOutOfRange},
		{name: "port too large", input: map[string]string{"port": "65536"}, wantErr: ErrOutOfRange},
		{name: "lowest port", input: map[string]string{"port": "1"}},
		{name: "highest port", input: map[string]string{"port": "65535"}},
		{name: "empty optional field skips rules", input: map[string]string{"port": "80", "driver": ""}},
		{name: "disallowed value", input: map[string]string{"port": "80", "driver": "mysql"}, wantErr: ErrNotAllowed},
	}

	v := portRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_FirstFailingRuleOnly(t *testing.T) {
	v := portRules()

	err := v.Validate(context.Background(), map[string]string{"port": "abc"})
	require.Error(t, err)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "port", fieldErr.Field)
	assert.Equal(t, "number", fieldErr.Rule)
	assert.NotErrorIs(t, err, ErrOutOfRange)
}

func TestValidate_JoinsFieldErrors(t *testing.T) {
	v := portRules()

	err := v.Validate(context.Background(), map[string]string{"driver": "mysql"})
	require.ErrorIs(t, err, ErrRequired)
	require.ErrorIs(t, err, ErrNotAllowed)
	assert.Contains(t, err.Error(), "port is required")
	assert.Contains(t, err.Error(), "driver is not an allowed value")
}

func TestValidate_Lengths(t *testing.T) {
	v := New()
	v.Field("s").MinLength(2).MaxLength(4)
	v.Field("b").MaxBytes(3)
	ctx := context.Background()

	require.ErrorIs(t, v.Validate(ctx, map[string]string{"s": "a"}), ErrTooShort)
	require.ErrorIs(t, v.Validate(ctx, map[string]string{"s": "abcde"}), ErrTooLong)
	require.NoError(t, v.Validate(ctx, map[string]string{"s": "абвг"}), "length counts runes")
	require.ErrorIs(t, v.Validate(ctx, map[string]string{"b": "жж"}), ErrTooLong, "byte limit counts bytes")
}

func TestValidate_Custom(t *testing.T) {
	errNoSpaces := errors.New("must not contain spaces")
	v := New()
	v.Field("login").Custom("no_spaces", func(value string) error {
		if strings.Contains(value, " ") {
			return errNoSpaces
		}
		return nil
	})

	err := v.Validate(context.Background(), map[string]string{"login": "a b"})
	require.ErrorIs(t, err, errNoSpaces)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "no_spaces", fieldErr.Rule)
}
