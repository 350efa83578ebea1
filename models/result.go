package models

import (
	"time"
)

// Result is a saved quiz outcome. It duplicates the score kept on the
// user's progress history so results can be listed independently.
type Result struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	UserID uint      `gorm:"not null;index" json:"-"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	QuizID string    `gorm:"size:100" json:"quizId,omitempty"`
	Topic  string    `gorm:"not null;size:200" json:"topic"`
	Score  int       `gorm:"not null" json:"score"`
	Date   time.Time `gorm:"autoCreateTime" json:"date"`
}
