package entity

import (
	"time"
)

// QuestionReport представляет жалобу пользователя на вопрос
type QuestionReport struct {
	ID          uint      `gorm:"primaryKey" json:"report_id"`
	UserID      string    `gorm:"size:100;not null" json:"user_id"`
	QuestionID  uint      `gorm:"not null;index" json:"question_id"`
	Description string    `gorm:"column:report_description;size:1000;not null" json:"description"`
	Reference   string    `gorm:"size:36;not null;uniqueIndex" json:"reference"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (QuestionReport) TableName() string {
	return "question_reports"
}
