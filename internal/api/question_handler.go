package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/models"
)

// QuestionHandler serves generated questions.
type QuestionHandler struct {
	questionService core.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(qs core.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: qs}
}

// GetQuestions handles GET /getAIQuestions. An optional "limit" query
// parameter caps the number of returned questions.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	limit := core.DefaultQuestionLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "Invalid 'limit' query parameter")
			return
		}
		limit = parsed
	}

	questions := h.questionService.Questions(limit)

	c.JSON(http.StatusOK, models.AskResponse{
		Questions: questions,
		Status:    "success",
	})
}
