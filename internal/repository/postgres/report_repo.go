package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// ReportRepo реализует repository.ReportRepository
type ReportRepo struct {
	db *gorm.DB
}

// NewReportRepo создает новый репозиторий жалоб
func NewReportRepo(db *gorm.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// Create сохраняет жалобу на вопрос
func (r *ReportRepo) Create(report *entity.QuestionReport) error {
	err := r.db.Create(report).Error
	if err != nil && isIntegrityViolation(err) {
		return fmt.Errorf("%w: question=%d", repository.ErrIntegrityViolation, report.QuestionID)
	}
	return err
}

// GetAll возвращает жалобы с пагинацией, новые первыми
func (r *ReportRepo) GetAll(limit, offset int) ([]entity.QuestionReport, error) {
	var reports []entity.QuestionReport
	err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&reports).Error
	return reports, err
}
