package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ShaikM36/tds-virtual-ta/types"
)

const (
	fallbackNoContent = "Please refer to course materials for detailed information."
	apologyAnswer     = "I apologize, but I'm having trouble accessing the course information right now. Please check the course materials or post your question on Discourse."
)

// AnswerService composes answers to student questions.
type AnswerService interface {
	// Answer never fails: when the language model is unreachable it
	// degrades to a templated answer built from the matched items.
	Answer(ctx context.Context, question, imageDescription string, items []types.KnowledgeItem) string
}

type answerService struct {
	ai AIService
}

// NewAnswerService creates an AnswerService backed by the given provider.
func NewAnswerService(ai AIService) AnswerService {
	return &answerService{
		ai: ai,
	}
}

func (s *answerService) Answer(ctx context.Context, question, imageDescription string, items []types.KnowledgeItem) string {
	answer, err := s.ai.Complete(ctx, buildPrompt(question, imageDescription, items))
	if err != nil {
		log.Printf("Answer generation failed, using fallback: %v", err)
		return fallbackAnswer(items)
	}
	return answer
}

// buildPrompt embeds the question, the matched snippets and the optional
// image description into a single teaching-assistant prompt.
func buildPrompt(question, imageDescription string, items []types.KnowledgeItem) string {
	contents := make([]string, 0, len(items))
	for _, item := range items {
		contents = append(contents, item.Content)
	}

	var b strings.Builder
	b.WriteString("You are a Teaching Assistant for the Tools in Data Science (TDS) course at IIT Madras.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Context from course materials and discourse:\n%s\n\n", strings.Join(contents, "\n"))
	if imageDescription != "" {
		fmt.Fprintf(&b, "Image description: %s\n\n", imageDescription)
	}
	b.WriteString("Provide a helpful, accurate answer based on the TDS course content. Be specific and practical.")
	return b.String()
}

// fallbackAnswer is the last line of defense before a caller would see an
// error; it must always produce a usable string.
func fallbackAnswer(items []types.KnowledgeItem) string {
	if len(items) == 0 {
		return apologyAnswer
	}
	content := items[0].Content
	if content == "" {
		content = fallbackNoContent
	}
	return "Based on course materials: " + content
}
