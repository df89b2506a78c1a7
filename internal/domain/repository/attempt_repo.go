package repository

import (
	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// ScoredAttempt представляет результат атомарной записи и подсчета одной попытки
type ScoredAttempt struct {
	Attempt      *entity.TestAttempt
	Verdicts     []entity.ResponseVerdict
	CorrectCount int
}

// AttemptSummary представляет сводку по попытке для истории и экспорта
type AttemptSummary struct {
	TestAttemptID  uint   `gorm:"column:test_attempt_id" json:"test_id"`
	UserID         string `gorm:"column:user_id" json:"user_id"`
	TotalQuestions int    `gorm:"column:total_questions" json:"total_questions"`
	CorrectCount   int    `gorm:"column:correct_count" json:"correct_count"`
	CreatedAt      string `gorm:"column:created_at" json:"created_at"`
}

// AttemptRepository определяет методы для записи и подсчета попыток.
// SubmitAndScore выполняет все шаги записи одной транзакцией: вставка попытки,
// пакетная вставка ответов, подсчет — либо всё, либо ничего.
type AttemptRepository interface {
	SubmitAndScore(userID string, answers []entity.AnswerPair) (*ScoredAttempt, error)

	// ScoreAttempt подсчитывает уже записанную попытку. Принимает транзакцию,
	// чтобы вызываться как внутри SubmitAndScore, так и отдельно для чтения.
	ScoreAttempt(tx *gorm.DB, attemptID uint) ([]entity.ResponseVerdict, int, error)

	GetByID(attemptID uint) (*entity.TestAttempt, error)
	GetUserSummaries(userID string) ([]AttemptSummary, error)
	GetAllSummaries(limit, offset int) ([]AttemptSummary, error)
}
