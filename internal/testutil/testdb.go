package testutil

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"project-tracker-api/internal/auth"
	"project-tracker-api/internal/config"
	"project-tracker-api/internal/models"
)

// NewInMemoryDB creates an in-memory SQLite DB and runs migrations.
func NewInMemoryDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	// Keep a single pool connection so every query sees the same
	// in-memory database.
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

// NewGate builds an access gate with test credentials (admin/admin).
func NewGate() (*auth.Gate, error) {
	return auth.NewGate(
		config.JWTConfig{
			Secret:   "test-secret",
			Issuer:   "project-tracker-api",
			Audience: "project-tracker-clients",
			TokenTTL: time.Hour,
		},
		config.AdminConfig{Login: "admin", Password: "admin"},
	)
}
