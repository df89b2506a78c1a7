package entity

import (
	"time"
)

// Question представляет вопрос из банка вопросов.
// Флаг IsTraining разделяет банк на тренировочный и экзаменационный пулы.
type Question struct {
	ID         uint      `gorm:"primaryKey" json:"question_id"`
	Text       string    `gorm:"column:question_text;size:500;not null" json:"question_text"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	IsTraining bool      `gorm:"not null;default:false;index" json:"is_training"`
	Options    []Option  `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// CorrectOption возвращает правильный вариант ответа (nil, если варианты не загружены).
// Инвариант схемы: ровно один вариант вопроса имеет is_correct = true.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

// HasOption проверяет, принадлежит ли вариант с данным ID этому вопросу
func (q *Question) HasOption(optionID uint) bool {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return true
		}
	}
	return false
}

// Option представляет вариант ответа на вопрос
type Option struct {
	ID         uint   `gorm:"primaryKey" json:"option_id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"column:option_text;size:500;not null" json:"option_text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"is_correct"`
}

// TableName определяет имя таблицы для GORM
func (Option) TableName() string {
	return "options"
}
