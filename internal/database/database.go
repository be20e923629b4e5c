package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"project-tracker-api/internal/models"
)

// Open creates the volatile in-memory store and runs migrations.
// The store lives for the lifetime of the process; every start begins
// from an empty database that Seed repopulates.
// Using glebarez/sqlite which is a pure Go implementation (no CGO required).
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// A fresh pool connection would get its own empty in-memory database,
	// so pin the pool to a single connection. This also serializes writes.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Project{},
		&models.Notification{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
