package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuestionService предоставляет методы для управления банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	assembler    *AssemblerService
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	assembler *AssemblerService,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		assembler:    assembler,
	}
}

// GetAllQuestions возвращает все вопросы с вариантами (включая флаги правильности).
// Используется только админским просмотром.
func (s *QuestionService) GetAllQuestions() ([]entity.Question, error) {
	return s.questionRepo.GetAllWithOptions()
}

// CreateQuestion создает вопрос с вариантами одной транзакцией.
// correctIndex указывает позицию правильного варианта в options —
// ровно один вариант получает is_correct = true. На этот инвариант
// опирается весь подсчет результатов.
func (s *QuestionService) CreateQuestion(
	text string,
	categoryID uint,
	isTraining bool,
	options []string,
	correctIndex int,
) (*entity.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: question text is required", apperrors.ErrValidation)
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("%w: at least 2 options are required", apperrors.ErrValidation)
	}
	if correctIndex < 0 || correctIndex >= len(options) {
		return nil, fmt.Errorf("%w: correct option index %d out of range", apperrors.ErrValidation, correctIndex)
	}
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return nil, fmt.Errorf("%w: empty option text", apperrors.ErrValidation)
		}
	}

	// Категория должна существовать
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return nil, fmt.Errorf("category %d: %w", categoryID, err)
	}

	question := &entity.Question{
		Text:       text,
		CategoryID: categoryID,
		IsTraining: isTraining,
	}
	optionRows := make([]entity.Option, len(options))
	for i, opt := range options {
		optionRows[i] = entity.Option{
			Text:      opt,
			IsCorrect: i == correctIndex,
		}
	}

	if err := s.questionRepo.CreateWithOptions(question, optionRows); err != nil {
		return nil, err
	}
	question.Options = optionRows

	s.assembler.InvalidatePoolCache()
	return question, nil
}

// UpdateQuestion обновляет текст и категорию вопроса
func (s *QuestionService) UpdateQuestion(id uint, categoryID uint, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: question text is required", apperrors.ErrValidation)
	}

	err := s.questionRepo.Update(&entity.Question{
		ID:         id,
		Text:       text,
		CategoryID: categoryID,
	})
	if err != nil {
		return err
	}

	s.assembler.InvalidatePoolCache()
	return nil
}

// DeleteQuestion удаляет вопрос вместе с вариантами
func (s *QuestionService) DeleteQuestion(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		return err
	}
	s.assembler.InvalidatePoolCache()
	return nil
}
