package postgres

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// AttemptRepo реализует repository.AttemptRepository
type AttemptRepo struct {
	db *gorm.DB
}

// NewAttemptRepo создает новый репозиторий попыток
func NewAttemptRepo(db *gorm.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// SubmitAndScore записывает попытку и все ответы одной транзакцией и сразу
// подсчитывает результат по только что записанным строкам. Любая ошибка на
// любом шаге откатывает транзакцию целиком — частичных попыток не бывает.
func (r *AttemptRepo) SubmitAndScore(userID string, answers []entity.AnswerPair) (*repository.ScoredAttempt, error) {
	var scored *repository.ScoredAttempt

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Шаг 0: проверяем, что каждая пара (вопрос, вариант) существует и
		// вариант принадлежит именно заявленному вопросу. Чужая или
		// несуществующая пара испортила бы подсчет и отклоняется целиком.
		if err := validateAnswerPairs(tx, answers); err != nil {
			return err
		}

		// Шаг 1: вставляем попытку и получаем сгенерированный ID
		attempt := &entity.TestAttempt{UserID: userID}
		result := tx.Create(attempt)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 || attempt.ID == 0 {
			return repository.ErrAttemptNotCreated
		}

		// Шаг 2: пакетная вставка ответов, все строки помечены новой попыткой
		responses := make([]entity.Response, len(answers))
		for i, a := range answers {
			responses[i] = entity.Response{
				TestAttemptID: attempt.ID,
				UserID:        userID,
				QuestionID:    a.QuestionID,
				OptionID:      a.OptionID,
			}
		}
		if err := tx.Create(&responses).Error; err != nil {
			if isIntegrityViolation(err) {
				return fmt.Errorf("%w: %v", repository.ErrIntegrityViolation, err)
			}
			return err
		}

		// Шаг 3: подсчет в той же транзакции — счет отражает ровно те строки,
		// что были записаны на шаге 2
		verdicts, correctCount, err := r.ScoreAttempt(tx, attempt.ID)
		if err != nil {
			return err
		}

		scored = &repository.ScoredAttempt{
			Attempt:      attempt,
			Verdicts:     verdicts,
			CorrectCount: correctCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[AttemptRepo] Попытка #%d пользователя %s записана: %d из %d",
		scored.Attempt.ID, userID, scored.CorrectCount, len(scored.Verdicts))
	return scored, nil
}

// validateAnswerPairs проверяет принадлежность каждого варианта заявленному вопросу
func validateAnswerPairs(tx *gorm.DB, answers []entity.AnswerPair) error {
	for _, a := range answers {
		var count int64
		err := tx.Model(&entity.Option{}).
			Where("id = ? AND question_id = ?", a.OptionID, a.QuestionID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: question=%d option=%d",
				repository.ErrIntegrityViolation, a.QuestionID, a.OptionID)
		}
	}
	return nil
}

// ScoreAttempt подсчитывает попытку: соединяет ответы с вариантами (текст и
// правильность выбранного) и вопросами (текст вопроса). Итоговый счет
// вычисляется за один проход по тем же строкам, вторым запросом не ходим.
func (r *AttemptRepo) ScoreAttempt(tx *gorm.DB, attemptID uint) ([]entity.ResponseVerdict, int, error) {
	var verdicts []entity.ResponseVerdict

	sql := `
		SELECT
			q.question_text,
			o.option_text,
			o.is_correct
		FROM responses resp
		JOIN options o ON o.id = resp.option_id
		JOIN questions q ON q.id = resp.question_id
		WHERE resp.test_attempt_id = ?
		ORDER BY resp.id
	`

	if err := tx.Raw(sql, attemptID).Scan(&verdicts).Error; err != nil {
		return nil, 0, err
	}

	return verdicts, entity.CountCorrect(verdicts), nil
}

// GetByID возвращает попытку по ID
func (r *AttemptRepo) GetByID(attemptID uint) (*entity.TestAttempt, error) {
	var attempt entity.TestAttempt
	err := r.db.First(&attempt, attemptID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// GetUserSummaries возвращает сводки по всем попыткам пользователя
func (r *AttemptRepo) GetUserSummaries(userID string) ([]repository.AttemptSummary, error) {
	var summaries []repository.AttemptSummary
	err := r.db.Raw(attemptSummarySQL+" WHERE ta.user_id = ? GROUP BY ta.id ORDER BY ta.id DESC", userID).
		Scan(&summaries).Error
	return summaries, err
}

// GetAllSummaries возвращает сводки по всем попыткам с пагинацией (для экспорта)
func (r *AttemptRepo) GetAllSummaries(limit, offset int) ([]repository.AttemptSummary, error) {
	var summaries []repository.AttemptSummary
	err := r.db.Raw(attemptSummarySQL+" GROUP BY ta.id ORDER BY ta.id DESC LIMIT ? OFFSET ?", limit, offset).
		Scan(&summaries).Error
	return summaries, err
}

// attemptSummarySQL агрегирует попытку в одну строку сводки
const attemptSummarySQL = `
	SELECT
		ta.id AS test_attempt_id,
		ta.user_id,
		COUNT(resp.id) AS total_questions,
		COUNT(CASE WHEN o.is_correct THEN 1 END) AS correct_count,
		TO_CHAR(ta.created_at, 'YYYY-MM-DD HH24:MI:SS') AS created_at
	FROM test_attempts ta
	JOIN responses resp ON resp.test_attempt_id = ta.id
	JOIN options o ON o.id = resp.option_id`
