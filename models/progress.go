package models

import (
	"time"
)

// Progress is one historical record of a completed quiz attempt.
// Rows are append-only; display ordering is by date descending.
type Progress struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	UserID uint      `gorm:"not null;index" json:"-"`
	Topic  string    `gorm:"not null;size:200" json:"topic"`
	Score  int       `gorm:"not null" json:"score"`
	Date   time.Time `gorm:"autoCreateTime" json:"date"`
}
