package entity

import (
	"time"
)

// TestAttempt представляет одну попытку прохождения теста.
// Создается ровно один раз при отправке ответов и после этого не изменяется.
type TestAttempt struct {
	ID        uint      `gorm:"primaryKey" json:"test_id"`
	UserID    string    `gorm:"size:100;not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (TestAttempt) TableName() string {
	return "test_attempts"
}

// Response представляет один ответ пользователя в рамках попытки.
// Все строки одной попытки записываются одним атомарным пакетом.
type Response struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TestAttemptID uint      `gorm:"not null;index" json:"test_id"`
	UserID        string    `gorm:"size:100;not null" json:"user_id"`
	QuestionID    uint      `gorm:"not null" json:"question_id"`
	OptionID      uint      `gorm:"not null" json:"option_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Response) TableName() string {
	return "responses"
}

// AnswerPair представляет пару (вопрос, выбранный вариант) при отправке ответов.
// Именованный тип вместо кортежа [questionId, optionId] исключает ошибки порядка полей.
type AnswerPair struct {
	QuestionID uint `json:"question_id"`
	OptionID   uint `json:"option_id"`
}

// ResponseVerdict представляет вердикт по одному ответу после подсчета
type ResponseVerdict struct {
	QuestionText string `gorm:"column:question_text" json:"question"`
	OptionText   string `gorm:"column:option_text" json:"option"`
	IsCorrect    bool   `gorm:"column:is_correct" json:"is_correct"`
}

// CountCorrect подсчитывает количество правильных ответов за один проход по вердиктам.
// Именно эта функция гарантирует согласованность итогового счета со списком вердиктов.
func CountCorrect(verdicts []ResponseVerdict) int {
	count := 0
	for i := range verdicts {
		if verdicts[i].IsCorrect {
			count++
		}
	}
	return count
}
