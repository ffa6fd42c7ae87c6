package entities

import "time"

// Session is a user's active-book record, used by the sqlite sessions backend.
type Session struct {
	UserID    int64 `gorm:"primaryKey"`
	BookTitle string
	UpdatedAt time.Time
}
