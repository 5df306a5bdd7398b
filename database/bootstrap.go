package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"seedlib/entities"
)

// Open opens (or creates) the single-file store and migrates the four
// tables. Foreign keys are switched on per connection via the DSN pragma so
// cascading deletes hold on every pooled connection.
func Open(path string) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Seed{},
		&entities.Task{},
		&entities.Inventory{},
		&entities.InventoryAdjustment{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}

// IsUniqueViolation reports whether err is a uniqueness-constraint failure.
// The string check covers drivers that don't translate to gorm's sentinel.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports whether err is a foreign-key failure,
// e.g. inserting inventory for a seed that no longer exists.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
