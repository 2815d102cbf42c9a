// Package testutil builds throwaway stores and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/profile-catalog/internal/db"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

// NewDB opens a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

// Today is the fixed "current date" used across tests.
var Today = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

// BornYearsAgo returns a birth date with Age == years relative to Today.
func BornYearsAgo(years int) time.Time {
	return Today.AddDate(0, 0, -years*365-10)
}

// Profile returns a valid profile with the given name and height.
func Profile(name string, height int) models.Profile {
	return models.Profile{
		Name:       name,
		BirthDate:  BornYearsAgo(25),
		Phone:      "+380501234567",
		Height:     height,
		Weight:     55,
		BreastSize: 2,
		HairColor:  locale.HairBlonde,
		Ethnicity:  locale.EthnicitySlavic,
		BodyType:   locale.BodySlim,
		BreastType: locale.BreastNatural,
	}
}

func IntPtr(v int) *int { return &v }

func StrPtr(s string) *string { return &s }
