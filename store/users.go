package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/adamind/quizwhizz-api/models"
	"github.com/adamind/quizwhizz-api/quiz"
)

var (
	// ErrDuplicateEmail means signup hit an already-registered email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound means no user matches the given identifier.
	ErrNotFound = errors.New("user not found")

	// ErrEmptyTopic guards the non-empty-topic invariant on history rows.
	ErrEmptyTopic = errors.New("topic must not be empty")
)

// UserStore persists users and their append-only quiz history. Progress
// entries, results, and flashcard sets are only ever inserted, never
// updated or deleted.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create registers a new user. The email must be unique; uniqueness is
// enforced both by a pre-check and by the unique index underneath.
func (s *UserStore) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing email: %w", err)
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generating user id: %w", err)
	}

	user := models.User{
		PublicID:     publicID,
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &user, nil
}

// GetByEmail looks a user up by email for login.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}
	return &user, nil
}

// GetByID returns the full user record including both history
// sequences, each ordered by date descending for display.
func (s *UserStore) GetByID(ctx context.Context, publicID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Progress", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Preload("FlashcardSets", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Preload("FlashcardSets.Cards").
		Where("public_id = ?", publicID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &user, nil
}

// AppendProgress adds one {topic, score, date} entry to the user's
// progress history.
func (s *UserStore) AppendProgress(ctx context.Context, userID, topic string, score int) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}

	id, err := s.internalID(ctx, userID)
	if err != nil {
		return err
	}

	entry := models.Progress{UserID: id, Topic: topic, Score: score}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("appending progress: %w", err)
	}
	return nil
}

// AppendFlashcardSet adds a dated flashcard set to the user's history.
func (s *UserStore) AppendFlashcardSet(ctx context.Context, userID, topic string, cards []quiz.Flashcard) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}

	id, err := s.internalID(ctx, userID)
	if err != nil {
		return err
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("generating set id: %w", err)
	}

	set := models.FlashcardSet{
		PublicID: publicID,
		UserID:   id,
		Topic:    topic,
	}
	for _, c := range cards {
		set.Cards = append(set.Cards, models.Flashcard{
			Question: c.Question,
			Answer:   c.Answer,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&set).Error; err != nil {
			return fmt.Errorf("appending flashcard set: %w", err)
		}
		return nil
	})
}

// FlashcardSets returns the user's saved flashcard sets, newest first.
func (s *UserStore) FlashcardSets(ctx context.Context, userID string) ([]models.FlashcardSet, error) {
	id, err := s.internalID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sets := []models.FlashcardSet{}
	err = s.db.WithContext(ctx).
		Where("user_id = ?", id).
		Preload("Cards").
		Order("date DESC").
		Find(&sets).Error
	if err != nil {
		return nil, fmt.Errorf("fetching flashcard sets: %w", err)
	}
	return sets, nil
}

// SaveResult inserts a Result row and the matching progress entry in
// one transaction.
func (s *UserStore) SaveResult(ctx context.Context, userID, quizID, topic string, score int) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}

	id, err := s.internalID(ctx, userID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := models.Result{UserID: id, QuizID: quizID, Topic: topic, Score: score}
		if err := tx.Create(&result).Error; err != nil {
			return fmt.Errorf("saving result: %w", err)
		}
		entry := models.Progress{UserID: id, Topic: topic, Score: score}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("appending progress: %w", err)
		}
		return nil
	})
}

// ResultsByUser returns the user's saved results, newest first.
func (s *UserStore) ResultsByUser(ctx context.Context, userID string) ([]models.Result, error) {
	id, err := s.internalID(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := []models.Result{}
	err = s.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("date DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("fetching results: %w", err)
	}
	return results, nil
}

// internalID resolves a public user ID to the primary key.
func (s *UserStore) internalID(ctx context.Context, publicID string) (uint, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Select("id").
		Where("public_id = ?", publicID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("resolving user id: %w", err)
	}
	return user.ID, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
