package service

import (
	"fmt"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// ScoreResult представляет успешный итог отправки ответов:
// записанная попытка, вердикты по каждому ответу и итоговый счет.
type ScoreResult struct {
	Attempt    *entity.TestAttempt
	Summary    []entity.ResponseVerdict
	FinalScore int
}

// AttemptService записывает попытки прохождения теста и возвращает результат подсчета
type AttemptService struct {
	attemptRepo repository.AttemptRepository
}

// NewAttemptService создает новый сервис попыток
func NewAttemptService(attemptRepo repository.AttemptRepository) *AttemptService {
	return &AttemptService{attemptRepo: attemptRepo}
}

// Submit записывает все ответы пользователя как одну атомарную попытку и
// возвращает результат подсчета. Либо сохраняется вся попытка и возвращается
// счет, либо не сохраняется ничего.
func (s *AttemptService) Submit(userID string, answers []entity.AnswerPair) (*ScoreResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: answers must not be empty", apperrors.ErrValidation)
	}

	// Один вопрос — один ответ в рамках попытки
	seen := make(map[uint]bool, len(answers))
	for _, a := range answers {
		if a.QuestionID == 0 || a.OptionID == 0 {
			return nil, fmt.Errorf("%w: answer pair with zero id", apperrors.ErrValidation)
		}
		if seen[a.QuestionID] {
			return nil, fmt.Errorf("%w: duplicate answer for question %d", apperrors.ErrValidation, a.QuestionID)
		}
		seen[a.QuestionID] = true
	}

	scored, err := s.attemptRepo.SubmitAndScore(userID, answers)
	if err != nil {
		// Ошибки целостности и создания попытки доходят до обработчика как есть,
		// остальное оборачивается как ошибка отправки
		return nil, fmt.Errorf("submit attempt for user %s: %w", userID, err)
	}

	return &ScoreResult{
		Attempt:    scored.Attempt,
		Summary:    scored.Verdicts,
		FinalScore: scored.CorrectCount,
	}, nil
}

// GetUserAttempts возвращает историю попыток пользователя со счетами
func (s *AttemptService) GetUserAttempts(userID string) ([]repository.AttemptSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	return s.attemptRepo.GetUserSummaries(userID)
}

// exportBatchSize — размер страницы при постраничной выгрузке попыток
const exportBatchSize = 1000

// GetAllAttemptSummaries выгружает сводки по всем попыткам без ограничения
// сверху: страницы читаются до первой неполной. Используется экспортом.
func (s *AttemptService) GetAllAttemptSummaries() ([]repository.AttemptSummary, error) {
	var all []repository.AttemptSummary
	for offset := 0; ; offset += exportBatchSize {
		page, err := s.attemptRepo.GetAllSummaries(exportBatchSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < exportBatchSize {
			return all, nil
		}
	}
}
