package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами и их вариантами
type QuestionRepository interface {
	// FetchEligiblePool возвращает развернутую выборку пула для заданного режима:
	// все вопросы с is_training = isTraining, соединенные с категорией и полным
	// набором вариантов, отсортированные по question_id.
	FetchEligiblePool(isTraining bool) ([]entity.QuestionPoolRow, error)

	GetByID(id uint) (*entity.Question, error)
	GetAllWithOptions() ([]entity.Question, error)

	// CreateWithOptions создает вопрос и его варианты одной транзакцией
	CreateWithOptions(question *entity.Question, options []entity.Option) error
	Update(question *entity.Question) error
	Delete(id uint) error
}

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	GetAll() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
	Create(category *entity.Category) error
	Update(category *entity.Category) error
	Delete(id uint) error
}
