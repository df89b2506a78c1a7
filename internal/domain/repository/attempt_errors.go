package repository

import "errors"

var (
	// ErrIntegrityViolation означает, что пара (вопрос, вариант) ссылается на
	// несуществующий вопрос или на вариант чужого вопроса. Такая попытка
	// отклоняется целиком, ни одна строка не сохраняется.
	ErrIntegrityViolation = errors.New("answer references unknown question or foreign option")

	// ErrAttemptNotCreated означает, что вставка попытки не вернула сгенерированный ID.
	ErrAttemptNotCreated = errors.New("test attempt was not created")
)
