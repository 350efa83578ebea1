package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adamind/quizwhizz-api/config"
	"github.com/adamind/quizwhizz-api/llm"
	"github.com/adamind/quizwhizz-api/logger"
	"github.com/adamind/quizwhizz-api/quiz"
	"github.com/adamind/quizwhizz-api/store"
)

const testSecret = "test-signing-secret"

type testEnv struct {
	mux      *http.ServeMux
	store    *store.UserStore
	db       *gorm.DB
	provider *llm.MockProvider
}

func newTestEnv(t *testing.T, responses ...llm.MockResponse) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	provider := llm.NewMockProvider(responses...)
	userStore := store.NewUserStore(db)
	quizService := quiz.NewService(provider, userStore, logger.NewNop())
	h := New(userStore, quizService, testSecret, logger.NewNop())

	return &testEnv{mux: h.Mux(), store: userStore, db: db, provider: provider}
}

// do runs one request through the real route table and decodes the JSON
// reply.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)

	var payload map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec.Code, payload
}

// rawGet returns the unparsed response body, used to compare repeated
// reads byte for byte.
func (e *testEnv) rawGet(t *testing.T, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec.Code, rec.Body.String()
}

// signupAndLogin registers a user and returns their public ID and a
// bearer token.
func (e *testEnv) signupAndLogin(t *testing.T, email string) (string, string) {
	t.Helper()

	status, payload := e.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "hunter2-but-longer",
	})
	require.Equal(t, http.StatusCreated, status)
	user := payload["user"].(map[string]interface{})
	id := user["_id"].(string)

	status, payload = e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "hunter2-but-longer",
	})
	require.Equal(t, http.StatusOK, status)
	token := payload["token"].(string)

	return id, token
}

func testQuizJSON(t *testing.T, n int) string {
	t.Helper()
	questions := make([]quiz.Question, n)
	for i := range questions {
		questions[i] = quiz.Question{
			Question: fmt.Sprintf("question %d", i),
			Options:  []string{"a", "b", "c", "d"},
			Answer:   "a",
		}
	}
	data, err := json.Marshal(questions)
	require.NoError(t, err)
	return string(data)
}

func testCardsJSON(t *testing.T, n int) string {
	t.Helper()
	cards := make([]quiz.Flashcard, n)
	for i := range cards {
		cards[i] = quiz.Flashcard{
			Question: fmt.Sprintf("term %d", i),
			Answer:   fmt.Sprintf("definition %d", i),
		}
	}
	data, err := json.Marshal(cards)
	require.NoError(t, err)
	return string(data)
}
