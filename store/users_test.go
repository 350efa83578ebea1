package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adamind/quizwhizz-api/config"
	"github.com/adamind/quizwhizz-api/models"
	"github.com/adamind/quizwhizz-api/quiz"
)

func newTestStore(t *testing.T) (*UserStore, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return NewUserStore(db), db
}

func createUser(t *testing.T, s *UserStore, email string) *models.User {
	t.Helper()
	user, err := s.Create(context.Background(), "Test User", email, "hash")
	require.NoError(t, err)
	return user
}

func TestCreate(t *testing.T) {
	s, _ := newTestStore(t)

	user := createUser(t, s, "Ada@Example.com")
	assert.NotEmpty(t, user.PublicID)
	assert.Equal(t, "ada@example.com", user.Email, "emails are normalized")
}

func TestCreate_DuplicateEmail(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	createUser(t, s, "ada@example.com")

	_, err := s.Create(ctx, "Other", "ada@example.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = s.Create(ctx, "Other", "ADA@example.com  ", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateEmail, "duplicate check is case-insensitive")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "a rejected signup must not mutate the store")
}

func TestGetByEmail(t *testing.T) {
	s, _ := newTestStore(t)

	created := createUser(t, s, "ada@example.com")

	found, err := s.GetByEmail(context.Background(), " Ada@example.com ")
	require.NoError(t, err)
	assert.Equal(t, created.PublicID, found.PublicID)

	_, err = s.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendProgress(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, s, "ada@example.com")

	const n = 4
	for i := 0; i < n; i++ {
		require.NoError(t, s.AppendProgress(ctx, user.PublicID, "Photosynthesis", i))
	}

	got, err := s.GetByID(ctx, user.PublicID)
	require.NoError(t, err)
	require.Len(t, got.Progress, n, "N appends grow the history by exactly N")

	scores := make(map[int]bool)
	for _, p := range got.Progress {
		assert.Equal(t, "Photosynthesis", p.Topic)
		scores[p.Score] = true
	}
	for i := 0; i < n; i++ {
		assert.True(t, scores[i], "prior entries are unchanged by later appends")
	}
}

func TestAppendProgress_Validation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, s, "ada@example.com")

	err := s.AppendProgress(ctx, user.PublicID, "   ", 3)
	assert.ErrorIs(t, err, ErrEmptyTopic)

	err = s.AppendProgress(ctx, "missing-user", "topic", 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByID_ProgressOrderedByDateDesc(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, s, "ada@example.com")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// Insert out of chronological order with explicit dates.
	for _, offset := range []int{2, 0, 1} {
		entry := models.Progress{
			UserID: user.ID,
			Topic:  fmt.Sprintf("topic-%d", offset),
			Score:  offset,
			Date:   base.Add(time.Duration(offset) * time.Hour),
		}
		require.NoError(t, db.Create(&entry).Error)
	}

	got, err := s.GetByID(ctx, user.PublicID)
	require.NoError(t, err)
	require.Len(t, got.Progress, 3)
	assert.Equal(t, "topic-2", got.Progress[0].Topic)
	assert.Equal(t, "topic-1", got.Progress[1].Topic)
	assert.Equal(t, "topic-0", got.Progress[2].Topic)
}

func TestAppendFlashcardSet(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, s, "ada@example.com")

	cards := []quiz.Flashcard{
		{Question: "Chlorophyll", Answer: "Green pigment."},
		{Question: "Stomata", Answer: "Leaf pores."},
	}
	require.NoError(t, s.AppendFlashcardSet(ctx, user.PublicID, "Biology", cards))

	sets, err := s.FlashcardSets(ctx, user.PublicID)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "Biology", sets[0].Topic)
	assert.NotEmpty(t, sets[0].PublicID)
	require.Len(t, sets[0].Cards, 2)
	assert.Equal(t, "Chlorophyll", sets[0].Cards[0].Question)
	assert.Equal(t, "Leaf pores.", sets[0].Cards[1].Answer)
}

func TestAppendFlashcardSet_Validation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, s, "ada@example.com")

	err := s.AppendFlashcardSet(ctx, user.PublicID, "", nil)
	assert.ErrorIs(t, err, ErrEmptyTopic)

	err = s.AppendFlashcardSet(ctx, "missing-user", "topic", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlashcardSets_EmptyHistory(t *testing.T) {
	s, _ := newTestStore(t)
	user := createUser(t, s, "ada@example.com")

	sets, err := s.FlashcardSets(context.Background(), user.PublicID)
	require.NoError(t, err)
	assert.NotNil(t, sets, "empty history serializes as [], not null")
	assert.Empty(t, sets)
}

func TestSaveResult(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, s, "ada@example.com")

	require.NoError(t, s.SaveResult(ctx, user.PublicID, "quiz-1", "History", 4))

	results, err := s.ResultsByUser(ctx, user.PublicID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "quiz-1", results[0].QuizID)
	assert.Equal(t, 4, results[0].Score)

	got, err := s.GetByID(ctx, user.PublicID)
	require.NoError(t, err)
	require.Len(t, got.Progress, 1, "saving a result also appends progress")
	assert.Equal(t, "History", got.Progress[0].Topic)
}

func TestSaveResult_UnknownUser(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.SaveResult(context.Background(), "missing", "", "topic", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
