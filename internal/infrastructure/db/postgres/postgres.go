package postgres

import (
	"fmt"
	"time"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fastbites/fastbites-api/internal/core/domain"
)

// Connect opens a GORM connection to PostgreSQL, tunes the pool, and
// verifies connectivity with a ping.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

// MigrateUsers applies schema migration for the users table only. The
// catalog tables (restaurants, menu_items) belong to the external
// catalog-management process and are never created or altered here.
func MigrateUsers(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{})
}
