// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-api-starter/internal/validators"
	"github.com/rs/zerolog"
)

var configRules = newConfigRules()

func newConfigRules() *validators.FieldRules {
	v := validators.New()
	v.Field("port").Required().Number().Range(1, 65535)
	v.Field("token_sign_key").Required()
	v.Field("dsn").Required()
	v.Field("db_driver").Required().OneOf("pgx", "sqlite3")
	v.Field("log_level").Required().Custom("log_level", func(value string) error {
		_, err := zerolog.ParseLevel(value)
		return err
	})
	v.Field("docs_route").Required().Custom("docs_route", checkDocsRoute)
	return v
}

// reservedRoutes are the prefixes already taken by the HTTP route groups.
var reservedRoutes = []string{"", "/api", "/api/auth", "/api/users", "/metrics"}

func checkDocsRoute(value string) error {
	if !strings.HasPrefix(value, "/") {
		return ErrInvalidDocsRoute
	}

	route := strings.TrimSuffix(value, "/")
	for _, reserved := range reservedRoutes {
		if route == reserved {
			return ErrInvalidDocsRoute
		}
	}
	return nil
}

// Fields exposes the validated settings to [validators.FieldRules].
func (cfg *StructuredConfig) Fields() map[string]string {
	return map[string]string{
		"port":           cfg.Server.Port,
		"token_sign_key": cfg.App.TokenSignKey,
		"dsn":            cfg.Storage.DB.DSN,
		"db_driver":      cfg.Storage.DB.Driver,
		"log_level":      cfg.Log.Level,
		"docs_route":     cfg.Server.DocsRoute,
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violation is reported; the result wraps [ErrInvalidConfig].
func (cfg *StructuredConfig) validate() error {
	if err := configRules.Validate(context.Background(), cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
