package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adamind/quizwhizz-api/llm"
	"github.com/adamind/quizwhizz-api/logger"
)

// ErrGenerationFailed indicates the model call or its parsing failed.
// The caller surfaces a user-facing message and persists nothing.
var ErrGenerationFailed = errors.New("generation failed")

// ErrEmptyTopic indicates the request carried no usable topic.
var ErrEmptyTopic = errors.New("topic is required")

// summaryFallback is returned when the summary call fails. Grading and
// persistence proceed regardless.
const summaryFallback = "Summary unavailable right now. Review the questions above to reinforce what you learned."

// Store is the persistence surface the quiz service mutates. History is
// append-only; there are no update or delete operations.
type Store interface {
	AppendProgress(ctx context.Context, userID, topic string, score int) error
	AppendFlashcardSet(ctx context.Context, userID, topic string, cards []Flashcard) error
}

// Service runs the generation-and-grading pipeline: prompt construction,
// model call, response parsing, persistence.
type Service struct {
	provider llm.Provider
	store    Store
	log      *logger.Logger
}

func NewService(provider llm.Provider, store Store, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		store:    store,
		log:      log.With("service", "quiz"),
	}
}

// GenerateQuiz asks the model for a fixed-size multiple-choice quiz on
// the topic. One model call, no retries; retry is a user-initiated
// repeat request.
func (s *Service) GenerateQuiz(ctx context.Context, topic string) ([]Question, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: generatorSystemPrompt,
		Prompt: buildQuizPrompt(topic),
	})
	if err != nil {
		s.log.Error("quiz model call failed", "topic", topic, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	questions, err := ParseQuiz(resp.Text)
	if err != nil {
		s.log.Warn("quiz response rejected", "topic", topic, "error", err)
		return nil, err
	}
	if len(questions) != QuestionsPerQuiz {
		return nil, fmt.Errorf("%w: got %d questions, want %d",
			ErrMalformedModelOutput, len(questions), QuestionsPerQuiz)
	}

	for i := range questions {
		questions[i].Topic = topic
	}

	s.log.Info("quiz generated", "topic", topic, "model", resp.Model)
	return questions, nil
}

// GenerateFlashcards asks the model for a fixed-size flashcard set. When
// a user ID is supplied the set is appended to that user's history; the
// append is awaited but its failure is only logged, so the caller still
// receives the generated cards.
func (s *Service) GenerateFlashcards(ctx context.Context, topic, userID string) ([]Flashcard, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: generatorSystemPrompt,
		Prompt: buildFlashcardPrompt(topic),
	})
	if err != nil {
		s.log.Error("flashcard model call failed", "topic", topic, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	cards, err := ParseFlashcards(resp.Text)
	if err != nil {
		s.log.Warn("flashcard response rejected", "topic", topic, "error", err)
		return nil, err
	}
	if len(cards) != CardsPerSet {
		return nil, fmt.Errorf("%w: got %d flashcards, want %d",
			ErrMalformedModelOutput, len(cards), CardsPerSet)
	}

	if userID != "" {
		if err := s.store.AppendFlashcardSet(ctx, userID, topic, cards); err != nil {
			s.log.Error("flashcard set not saved", "user", userID, "topic", topic, "error", err)
		}
	}

	s.log.Info("flashcards generated", "topic", topic, "model", resp.Model)
	return cards, nil
}

// Summarize requests a short natural-language summary of the quiz and
// appends a progress entry when a user ID is supplied. The summary is
// best-effort: a model failure degrades to a fixed fallback string and
// never blocks the progress write. Beyond a missing topic, the returned
// error reports only persistence failure.
func (s *Service) Summarize(ctx context.Context, topic string, questions []Question, score int, userID string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}

	summary := summaryFallback
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt: buildSummaryPrompt(topic, questions),
	})
	if err != nil {
		s.log.Warn("summary model call failed, using fallback", "topic", topic, "error", err)
	} else {
		summary = strings.TrimSpace(resp.Text)
	}

	if userID != "" {
		if err := s.store.AppendProgress(ctx, userID, topic, score); err != nil {
			return summary, fmt.Errorf("saving progress: %w", err)
		}
	}

	return summary, nil
}

// Explain asks the model for one short explanation per missed question.
// Explanations are supplementary: any failure yields an empty list and
// a non-nil error the caller may log, never a hard failure.
func (s *Service) Explain(ctx context.Context, wrong []WrongAnswer) ([]Explanation, error) {
	if len(wrong) == 0 {
		return []Explanation{}, nil
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt: buildExplainPrompt(wrong),
	})
	if err != nil {
		s.log.Warn("explanation model call failed", "error", err)
		return []Explanation{}, err
	}

	explanations, err := ParseExplanations(resp.Text)
	if err != nil {
		s.log.Warn("explanation response rejected", "error", err)
		return []Explanation{}, err
	}

	return explanations, nil
}
