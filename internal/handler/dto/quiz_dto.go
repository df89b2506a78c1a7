package dto

import (
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	"github.com/yourusername/quiz-api/internal/service"
)

// TestOptionResponse представляет вариант ответа в собранном тесте.
// Флага правильности здесь нет и быть не должно.
type TestOptionResponse struct {
	OptionID   uint   `json:"optionId"`
	OptionText string `json:"optionText"`
}

// TestQuestionResponse представляет вопрос собранного теста в формате для клиента
type TestQuestionResponse struct {
	QuestionID   uint                 `json:"questionId"`
	QuestionText string               `json:"questionText"`
	CategoryID   uint                 `json:"categoryId"`
	CategoryName string               `json:"categoryName"`
	IsTraining   bool                 `json:"isTraining"`
	Options      []TestOptionResponse `json:"options"`
}

// NewTestResponse создает слайс DTO для собранного теста
func NewTestResponse(questions []entity.AssembledQuestion) []TestQuestionResponse {
	list := make([]TestQuestionResponse, len(questions))
	for i, q := range questions {
		options := make([]TestOptionResponse, len(q.Options))
		for j, o := range q.Options {
			options[j] = TestOptionResponse{
				OptionID:   o.OptionID,
				OptionText: o.OptionText,
			}
		}
		list[i] = TestQuestionResponse{
			QuestionID:   q.QuestionID,
			QuestionText: q.QuestionText,
			CategoryID:   q.CategoryID,
			CategoryName: q.CategoryName,
			IsTraining:   q.IsTraining,
			Options:      options,
		}
	}
	return list
}

// VerdictResponse представляет вердикт по одному ответу в итоговой сводке
type VerdictResponse struct {
	Question  string `json:"question"`
	Option    string `json:"option"`
	IsCorrect bool   `json:"isCorrect"`
}

// SubmitResultResponse представляет итог успешной отправки ответов
type SubmitResultResponse struct {
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	TestID     uint              `json:"testId"`
	Summary    []VerdictResponse `json:"summary"`
	FinalScore int               `json:"finalScore"`
}

// NewSubmitResultResponse создает DTO для результата отправки
func NewSubmitResultResponse(result *service.ScoreResult) *SubmitResultResponse {
	if result == nil {
		return nil
	}
	summary := make([]VerdictResponse, len(result.Summary))
	for i, v := range result.Summary {
		summary[i] = VerdictResponse{
			Question:  v.QuestionText,
			Option:    v.OptionText,
			IsCorrect: v.IsCorrect,
		}
	}
	return &SubmitResultResponse{
		Status:     "success",
		Message:    "Responses recorded successfully",
		TestID:     result.Attempt.ID,
		Summary:    summary,
		FinalScore: result.FinalScore,
	}
}

// AttemptSummaryResponse представляет сводку по попытке для истории
type AttemptSummaryResponse struct {
	TestID         uint   `json:"testId"`
	UserID         string `json:"userId"`
	TotalQuestions int    `json:"totalQuestions"`
	CorrectCount   int    `json:"correctCount"`
	CreatedAt      string `json:"createdAt"`
}

// NewAttemptSummaryListResponse создает слайс DTO для истории попыток
func NewAttemptSummaryListResponse(summaries []repository.AttemptSummary) []AttemptSummaryResponse {
	list := make([]AttemptSummaryResponse, len(summaries))
	for i, s := range summaries {
		list[i] = AttemptSummaryResponse{
			TestID:         s.TestAttemptID,
			UserID:         s.UserID,
			TotalQuestions: s.TotalQuestions,
			CorrectCount:   s.CorrectCount,
			CreatedAt:      s.CreatedAt,
		}
	}
	return list
}

// CategoryResponse представляет категорию в формате для клиента
type CategoryResponse struct {
	CategoryID   uint      `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewCategoryResponse создает DTO для категории
func NewCategoryResponse(category *entity.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		CategoryID:   category.ID,
		CategoryName: category.Name,
		CreatedAt:    category.CreatedAt,
	}
}

// NewCategoryListResponse создает слайс DTO для списка категорий
func NewCategoryListResponse(categories []entity.Category) []*CategoryResponse {
	list := make([]*CategoryResponse, len(categories))
	for i := range categories {
		list[i] = NewCategoryResponse(&categories[i])
	}
	return list
}
