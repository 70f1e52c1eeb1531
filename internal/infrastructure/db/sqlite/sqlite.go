package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// Config captures the minimal settings required to open the SQLite database.
type Config struct {
	// Path is the database file path, or ":memory:" for an in-memory store.
	Path string
}

// Connect opens the SQLite database and runs the schema migration once.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey regardless of driver version.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the users and todos tables. Called once at
// startup instead of before every request.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.ToDo{}); err != nil {
		return fmt.Errorf("sqlite migrate: %w", err)
	}
	return nil
}
