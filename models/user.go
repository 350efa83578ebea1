package models

import "gorm.io/gorm"

// User represents a registered user. The password is stored only as a
// bcrypt hash and is never serialized.
type User struct {
	gorm.Model   `json:"-"`
	PublicID     string `gorm:"size:100;uniqueIndex" json:"_id"`
	Name         string `gorm:"not null;size:100" json:"name"`
	Email        string `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"not null;size:100" json:"-"`

	Progress      []Progress     `gorm:"foreignKey:UserID" json:"progress"`
	FlashcardSets []FlashcardSet `gorm:"foreignKey:UserID" json:"flashcards"`
	Results       []Result       `gorm:"foreignKey:UserID" json:"-"`
}

// PublicUser is the shape returned to clients after signup and login.
type PublicUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.PublicID, Name: u.Name, Email: u.Email}
}
