package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// FetchEligiblePool возвращает развернутую выборку пула для заданного режима.
// Каждая строка — пара (вопрос, вариант) с полными данными категории.
// Сортировка по question_id дает детерминированный порядок до перемешивания.
func (r *QuestionRepo) FetchEligiblePool(isTraining bool) ([]entity.QuestionPoolRow, error) {
	var rows []entity.QuestionPoolRow

	sql := `
		SELECT
			q.id AS question_id,
			q.question_text,
			q.category_id,
			c.category_name,
			q.is_training,
			o.id AS option_id,
			o.option_text
		FROM questions q
		JOIN categories c ON c.id = q.category_id
		JOIN options o ON o.question_id = q.id
		WHERE q.is_training = ?
		ORDER BY q.id, o.id
	`

	if err := r.db.Raw(sql, isTraining).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID возвращает вопрос с вариантами по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Preload("Options").First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetAllWithOptions возвращает все вопросы с вариантами (админский просмотр)
func (r *QuestionRepo) GetAllWithOptions() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Preload("Options").Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CreateWithOptions создает вопрос и его варианты одной транзакцией.
// Пакетная вставка вариантов параметризована GORM — никакой ручной сборки SQL.
func (r *QuestionRepo) CreateWithOptions(question *entity.Question, options []entity.Option) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].QuestionID = question.ID
		}
		return tx.Create(&options).Error
	})
}

// Update обновляет текст и категорию вопроса
func (r *QuestionRepo) Update(question *entity.Question) error {
	result := r.db.Model(&entity.Question{}).
		Where("id = ?", question.ID).
		Updates(map[string]interface{}{
			"question_text": question.Text,
			"category_id":   question.CategoryID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет вопрос вместе с вариантами
func (r *QuestionRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&entity.Option{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Question{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}
