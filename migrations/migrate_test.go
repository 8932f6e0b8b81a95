// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	for _, driver := range []string{DriverPostgres, DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			_ = mock // goose talks to the DB itself; no expectations means every query fails

			err = Migrate(db, driver)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "migration error")
		})
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DriverPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported driver "mysql"`)
}

// Every dialect must ship the same set of migration versions.
func TestEmbeddedMigrations_DialectsInSync(t *testing.T) {
	list := func(dir string) []string {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names
	}

	pg := list("postgres")
	lite := list("sqlite")
	require.NotEmpty(t, pg)
	assert.Equal(t, pg, lite)

	for _, name := range pg {
		data, err := fs.ReadFile(embedMigrations, "postgres/"+name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(data), "-- +goose Up"), "%s lacks goose Up annotation", name)
		assert.True(t, strings.Contains(string(data), "-- +goose Down"), "%s lacks goose Down annotation", name)
	}
}
