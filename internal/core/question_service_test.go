package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuestionService() *questionService {
	svc := NewQuestionService().(*questionService)
	nextID := 0
	svc.newID = func() string {
		nextID++
		return fmt.Sprintf("q-%d", nextID)
	}
	return svc
}

func TestQuestionsDefaultLimit(t *testing.T) {
	svc := newTestQuestionService()

	questions := svc.Questions(DefaultQuestionLimit)
	require.Len(t, questions, DefaultQuestionLimit)

	seen := make(map[string]bool)
	for _, q := range questions {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Question)
		assert.False(t, seen[q.ID], "ids must be unique within a response")
		seen[q.ID] = true
	}
}

func TestQuestionsLimitClamping(t *testing.T) {
	svc := newTestQuestionService()

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: DefaultQuestionLimit},
		{limit: -3, want: DefaultQuestionLimit},
		{limit: 2, want: 2},
		{limit: 100, want: len(sampleQuestions)},
	}

	for _, tt := range tests {
		assert.Len(t, svc.Questions(tt.limit), tt.want, "limit=%d", tt.limit)
	}
}

func TestQuestionsFreshIDsPerCall(t *testing.T) {
	svc := newTestQuestionService()

	first := svc.Questions(1)
	second := svc.Questions(1)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Question, second[0].Question)
}
