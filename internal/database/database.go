package database

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SchemaVersion is bumped whenever the table layout changes in a way
// that requires rebuilding the dictionary database.
const SchemaVersion = 1

// DB wraps the GORM connection
type DB struct {
	*gorm.DB
}

// Open opens a connection to the SQLite database
func Open(path string) (*DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on&_journal_mode=WAL"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return &DB{gormDB}, nil
}

// NewDBFromGorm wraps an existing GORM connection, used by tests to run
// against in-memory databases.
func NewDBFromGorm(gormDB *gorm.DB) *DB {
	return &DB{gormDB}
}

// Migrate creates all tables and records the schema version
func (db *DB) Migrate() error {
	err := db.AutoMigrate(
		&Character{},
		&Phrase{},
		&Surname{},
		&Metadata{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	meta := Metadata{Key: "schema_version", Value: strconv.Itoa(SchemaVersion)}
	if err := db.Save(&meta).Error; err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}

	return nil
}

// GetSchemaVersion returns the current schema version, 0 when the
// database has never been migrated.
func (db *DB) GetSchemaVersion() (int, error) {
	var meta Metadata
	err := db.Where("key = ?", "schema_version").First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(meta.Value)
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
