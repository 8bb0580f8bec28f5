package sqlite

import (
	"fmt"
	"time"

	"carcare/internal/domain/entity"
	"carcare/internal/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens the SQLite database at dsn and migrates the schema.
func NewDB(dsn string, log logger.Logger) (*gorm.DB, error) {
	// Configure GORM logger to write through the application logger
	newLogger := gormlogger.New(
		log,
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to connect to database: %w", err)
	}
	log.Info(fmt.Sprintf("Successfully connected to database: %s", dsn))

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Info("Database schema migration completed.")
	return db, nil
}

// AutoMigrate automatically migrates the database schema for the defined entities.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Vehicle{},
		&entity.Service{},
		&entity.Reminder{},
		&entity.History{},
	)
	if err != nil {
		return fmt.Errorf("🔴 ERROR: schema migration failed: %w", err)
	}
	return nil
}

// CloseDB closes the database connection if it's open.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to get underlying *sql.DB: %w", err)
	}
	return sqlDB.Close()
}
