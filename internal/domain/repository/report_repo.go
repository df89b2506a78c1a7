package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// ReportRepository определяет методы для работы с жалобами на вопросы
type ReportRepository interface {
	Create(report *entity.QuestionReport) error
	GetAll(limit, offset int) ([]entity.QuestionReport, error)
}

// AdminRepository определяет методы для работы с администраторами
type AdminRepository interface {
	GetByUsername(username string) (*entity.Admin, error)
	GetByID(id uint) (*entity.Admin, error)
	Create(admin *entity.Admin) error
}
