package entity

// QuestionPoolRow представляет одну строку развернутой выборки пула:
// вопрос × категория × вариант ответа. Флаг правильности намеренно
// не входит в выборку пула — клиенту он никогда не отдается.
type QuestionPoolRow struct {
	QuestionID   uint   `gorm:"column:question_id"`
	QuestionText string `gorm:"column:question_text"`
	CategoryID   uint   `gorm:"column:category_id"`
	CategoryName string `gorm:"column:category_name"`
	IsTraining   bool   `gorm:"column:is_training"`
	OptionID     uint   `gorm:"column:option_id"`
	OptionText   string `gorm:"column:option_text"`
}

// AssembledOption представляет вариант ответа в собранном тесте (без флага правильности)
type AssembledOption struct {
	OptionID   uint   `json:"option_id"`
	OptionText string `json:"option_text"`
}

// AssembledQuestion представляет вопрос собранного теста с полным набором вариантов
type AssembledQuestion struct {
	QuestionID   uint              `json:"question_id"`
	QuestionText string            `json:"question_text"`
	CategoryID   uint              `json:"category_id"`
	CategoryName string            `json:"category_name"`
	IsTraining   bool              `json:"is_training"`
	Options      []AssembledOption `json:"options"`
}
