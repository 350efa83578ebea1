package models

// Flashcard is one question/answer pair inside a FlashcardSet.
type Flashcard struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	SetID    uint   `gorm:"not null;index" json:"-"`
	Question string `gorm:"not null;size:500" json:"question"`
	Answer   string `gorm:"not null;size:2000" json:"answer"`
}
