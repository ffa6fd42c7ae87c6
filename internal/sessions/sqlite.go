package sessions

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avoronov/quotekeeper/internal/entities"
)

// SQLiteStore persists active books to a local sqlite database so they
// survive restarts. Single-key upserts and deletes only.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Session{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Sessions database initialized at %s", dbPath)

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(userID int64) (string, bool, error) {
	var session entities.Session
	err := s.db.First(&session, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return session.BookTitle, true, nil
}

func (s *SQLiteStore) Set(userID int64, title string) error {
	return s.db.Save(&entities.Session{UserID: userID, BookTitle: title}).Error
}

func (s *SQLiteStore) Clear(userID int64) error {
	return s.db.Delete(&entities.Session{}, "user_id = ?", userID).Error
}

// Ping reports whether the underlying database is reachable.
func (s *SQLiteStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
