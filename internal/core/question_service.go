package core

import (
	"github.com/google/uuid"

	"genesis-backend-go/internal/models"
)

// Bounds for the getAIQuestions limit query parameter.
const (
	DefaultQuestionLimit = 5
	MaxQuestionLimit     = 20
)

// sampleQuestions is the static question pool served until a real
// generator backs this endpoint.
var sampleQuestions = []string{
	"What are the key principles of machine learning?",
	"How does a neural network work?",
	"What are the differences between AI and ML?",
	"How can we ensure AI is used ethically?",
	"What are some common NLP techniques?",
}

// questionService implements the QuestionService interface.
type questionService struct {
	newID func() string
}

// NewQuestionService creates a new QuestionService instance.
func NewQuestionService() QuestionService {
	return &questionService{newID: uuid.NewString}
}

// Questions returns up to limit sample questions with fresh ids. The
// limit is clamped to [1, MaxQuestionLimit]; non-positive values fall
// back to the default.
func (s *questionService) Questions(limit int) []models.AskQuestion {
	if limit <= 0 {
		limit = DefaultQuestionLimit
	}
	if limit > MaxQuestionLimit {
		limit = MaxQuestionLimit
	}
	if limit > len(sampleQuestions) {
		limit = len(sampleQuestions)
	}

	questions := make([]models.AskQuestion, 0, limit)
	for _, q := range sampleQuestions[:limit] {
		questions = append(questions, models.AskQuestion{
			ID:       s.newID(),
			Question: q,
		})
	}
	return questions
}
