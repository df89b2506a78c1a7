package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/handler/dto"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuestionHandler обрабатывает административные запросы к банку вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetQuestions возвращает все вопросы с вариантами и флагами правильности.
// GET /api/quiz/questions (только для администратора)
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, err := h.questionService.GetAllQuestions()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAdminQuestionListResponse(questions))
}

// CreateQuestionRequest представляет запрос на создание вопроса
type CreateQuestionRequest struct {
	Text          string   `json:"questionText" binding:"required,min=3,max=500"`
	CategoryID    uint     `json:"categoryId" binding:"required"`
	IsTraining    bool     `json:"isTraining"`
	Options       []string `json:"options" binding:"required,min=2,max=5"`
	CorrectOption int      `json:"correctOption" binding:"min=0"`
}

// CreateQuestion добавляет вопрос с вариантами ответа.
// POST /api/quiz/questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	question, err := h.questionService.CreateQuestion(req.Text, req.CategoryID, req.IsTraining, req.Options, req.CorrectOption)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAdminQuestionResponse(question))
}

// UpdateQuestionRequest представляет запрос на обновление вопроса
type UpdateQuestionRequest struct {
	Text       string `json:"questionText" binding:"required,min=3,max=500"`
	CategoryID uint   `json:"categoryId" binding:"required"`
}

// UpdateQuestion обновляет текст и категорию вопроса.
// PUT /api/quiz/questions/:id
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	if err := h.questionService.UpdateQuestion(questionID, req.CategoryID, req.Text); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question updated successfully"})
}

// DeleteQuestion удаляет вопрос вместе с вариантами ответа.
// DELETE /api/quiz/questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}
