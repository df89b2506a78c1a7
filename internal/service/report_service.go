package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// ReportService принимает жалобы пользователей на вопросы
type ReportService struct {
	reportRepo   repository.ReportRepository
	questionRepo repository.QuestionRepository
	emailService EmailService
	notifyEmail  string
}

// NewReportService создает новый сервис жалоб.
// notifyEmail может быть пустым — тогда уведомления не отправляются.
func NewReportService(
	reportRepo repository.ReportRepository,
	questionRepo repository.QuestionRepository,
	emailService EmailService,
	notifyEmail string,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		questionRepo: questionRepo,
		emailService: emailService,
		notifyEmail:  notifyEmail,
	}
}

// SubmitReport сохраняет жалобу и возвращает ее регистрационный код
func (s *ReportService) SubmitReport(userID string, questionID uint, description string) (*entity.QuestionReport, error) {
	description = strings.TrimSpace(description)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	if questionID == 0 {
		return nil, fmt.Errorf("%w: question id is required", apperrors.ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: report description is required", apperrors.ErrValidation)
	}

	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, fmt.Errorf("question %d: %w", questionID, err)
	}

	report := &entity.QuestionReport{
		UserID:      userID,
		QuestionID:  questionID,
		Description: description,
		Reference:   uuid.New().String(),
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}

	// Уведомление администратора не входит в запись жалобы:
	// ошибка отправки письма не отменяет уже сохраненную жалобу
	if s.notifyEmail != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.emailService.SendReportNotification(ctx, s.notifyEmail, report.Reference, question.Text, description); err != nil {
				log.Printf("[ReportService] Не удалось отправить уведомление о жалобе %s: %v", report.Reference, err)
			}
		}()
	}

	return report, nil
}

// GetReports возвращает жалобы с пагинацией
func (s *ReportService) GetReports(limit, offset int) ([]entity.QuestionReport, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.reportRepo.GetAll(limit, offset)
}
