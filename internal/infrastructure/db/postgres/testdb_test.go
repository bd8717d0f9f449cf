package postgres

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fastbites/fastbites-api/internal/core/domain"
)

// newTestDB opens an in-memory SQLite database with the full schema. The
// pool is pinned to one connection so every query sees the same memory
// database. Production migrations only manage the users table; the catalog
// tables are created here because the external process that owns them does
// not exist in tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&domain.User{}, &domain.Restaurant{}, &domain.MenuItem{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	return db
}

func boolptr(b bool) *bool        { return &b }
func strptr(s string) *string     { return &s }
func floatptr(f float64) *float64 { return &f }
