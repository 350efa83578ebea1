package models

import (
	"time"

	"gorm.io/gorm"
)

// FlashcardSet is a dated group of generated flashcards for one topic,
// owned by a user.
type FlashcardSet struct {
	gorm.Model `json:"-"`
	PublicID   string `gorm:"size:100;uniqueIndex" json:"_id"`
	UserID     uint   `gorm:"not null;index" json:"-"`
	User       User   `gorm:"foreignKey:UserID" json:"-"`
	Topic      string `gorm:"not null;size:200" json:"topic"`

	Cards []Flashcard `gorm:"foreignKey:SetID" json:"data"`

	Date time.Time `gorm:"autoCreateTime" json:"date"`
}
