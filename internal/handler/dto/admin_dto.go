package dto

import (
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// AdminOptionResponse представляет вариант ответа для админки (с флагом правильности)
type AdminOptionResponse struct {
	OptionID   uint   `json:"optionId"`
	OptionText string `json:"optionText"`
	IsCorrect  bool   `json:"isCorrect"`
}

// AdminQuestionResponse представляет вопрос для админки.
// В отличие от клиентского DTO включает флаги правильности вариантов.
type AdminQuestionResponse struct {
	QuestionID   uint                  `json:"questionId"`
	QuestionText string                `json:"questionText"`
	CategoryID   uint                  `json:"categoryId"`
	IsTraining   bool                  `json:"isTraining"`
	Options      []AdminOptionResponse `json:"options"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// NewAdminQuestionResponse создает DTO вопроса для админки
func NewAdminQuestionResponse(q *entity.Question) *AdminQuestionResponse {
	if q == nil {
		return nil
	}
	options := make([]AdminOptionResponse, len(q.Options))
	for i, o := range q.Options {
		options[i] = AdminOptionResponse{
			OptionID:   o.ID,
			OptionText: o.Text,
			IsCorrect:  o.IsCorrect,
		}
	}
	return &AdminQuestionResponse{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		CategoryID:   q.CategoryID,
		IsTraining:   q.IsTraining,
		Options:      options,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

// NewAdminQuestionListResponse создает слайс DTO вопросов для админки
func NewAdminQuestionListResponse(questions []entity.Question) []*AdminQuestionResponse {
	list := make([]*AdminQuestionResponse, len(questions))
	for i := range questions {
		list[i] = NewAdminQuestionResponse(&questions[i])
	}
	return list
}

// LoginResponse представляет ответ на успешный вход администратора
type LoginResponse struct {
	Token    string `json:"token"`
	AdminID  uint   `json:"adminId"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// NewLoginResponse создает DTO для ответа на вход
func NewLoginResponse(token string, admin *entity.Admin) *LoginResponse {
	return &LoginResponse{
		Token:    token,
		AdminID:  admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
	}
}

// ReportResponse представляет подтверждение принятой жалобы
type ReportResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

// NewReportResponse создает DTO для подтверждения жалобы
func NewReportResponse(report *entity.QuestionReport) *ReportResponse {
	return &ReportResponse{
		Status:    "success",
		Message:   "Report submitted successfully",
		Reference: report.Reference,
	}
}
