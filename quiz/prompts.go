package quiz

import (
	"fmt"
	"strings"
)

const generatorSystemPrompt = "You are a quiz and flashcard generator for a study app. " +
	"You always reply with exactly the JSON the user asks for, with no markdown and no commentary."

func buildQuizPrompt(topic string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate %d multiple-choice questions about %q.\n", QuestionsPerQuiz, topic))
	sb.WriteString("Each question must have:\n")
	sb.WriteString("- \"question\": the question text\n")
	sb.WriteString(fmt.Sprintf("- \"options\": an array of %d distinct choices\n", OptionsPerQuestion))
	sb.WriteString("- \"answer\": the correct option text, copied exactly from the options\n")
	sb.WriteString("Return ONLY a pure JSON array, no markdown, no extra text.\n")
	return sb.String()
}

func buildFlashcardPrompt(topic string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate %d concise flashcards on %q.\n", CardsPerSet, topic))
	sb.WriteString("Each flashcard must have:\n")
	sb.WriteString("- \"question\": a short concept or term to recall\n")
	sb.WriteString("- \"answer\": a brief and clear explanation\n")
	sb.WriteString("Return ONLY a JSON array like [{\"question\": \"...\", \"answer\": \"...\"}], no markdown.\n")
	return sb.String()
}

func buildSummaryPrompt(topic string, questions []Question) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summarize the key learnings from this %s quiz in 3-4 lines:\n", topic))
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("Q%d: %s\nA: %s\n", i+1, q.Question, q.Answer))
	}
	sb.WriteString("Highlight the main ideas and topic.\n")
	return sb.String()
}

func buildExplainPrompt(wrong []WrongAnswer) string {
	var sb strings.Builder
	sb.WriteString("For each of these quiz questions, give a 2-3 line explanation of why the correct answer is right.\n")
	for i, w := range wrong {
		sb.WriteString(fmt.Sprintf("%d. Question: %s\n   Selected: %s\n   Correct: %s\n",
			i+1, w.Question, w.Selected, w.Correct))
	}
	sb.WriteString("Respond strictly with a JSON array like [{\"question\": \"...\", \"explanation\": \"...\"}], no markdown.\n")
	return sb.String()
}
