package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_CorrectOption(t *testing.T) {
	// Arrange
	question := &Question{
		ID:   1,
		Text: "Какая команда инициализирует модуль Go?",
		Options: []Option{
			{ID: 10, QuestionID: 1, Text: "go run", IsCorrect: false},
			{ID: 11, QuestionID: 1, Text: "go mod init", IsCorrect: true},
			{ID: 12, QuestionID: 1, Text: "go build", IsCorrect: false},
		},
	}

	// Act
	correct := question.CorrectOption()

	// Assert
	assert.NotNil(t, correct, "Правильный вариант должен быть найден")
	assert.Equal(t, uint(11), correct.ID)
	assert.Equal(t, "go mod init", correct.Text)
}

func TestQuestion_CorrectOption_NoOptionsLoaded(t *testing.T) {
	// Arrange: варианты не загружены из базы
	question := &Question{ID: 1}

	// Act & Assert
	assert.Nil(t, question.CorrectOption(), "Без вариантов CorrectOption должен вернуть nil")
}

func TestQuestion_HasOption(t *testing.T) {
	// Arrange
	question := &Question{
		ID: 1,
		Options: []Option{
			{ID: 10, QuestionID: 1},
			{ID: 11, QuestionID: 1},
		},
	}

	// Act & Assert: свои варианты
	assert.True(t, question.HasOption(10))
	assert.True(t, question.HasOption(11))

	// Assert: чужой вариант не принадлежит вопросу
	assert.False(t, question.HasOption(21), "Вариант другого вопроса должен быть отклонен")
	assert.False(t, question.HasOption(0))
}

func TestCountCorrect(t *testing.T) {
	// Arrange
	verdicts := []ResponseVerdict{
		{QuestionText: "Вопрос 1", OptionText: "A", IsCorrect: true},
		{QuestionText: "Вопрос 2", OptionText: "B", IsCorrect: false},
		{QuestionText: "Вопрос 3", OptionText: "C", IsCorrect: true},
	}

	// Act & Assert
	assert.Equal(t, 2, CountCorrect(verdicts))
}

func TestCountCorrect_EmptyVerdicts(t *testing.T) {
	// Act & Assert: пустой список вердиктов дает ноль правильных
	assert.Equal(t, 0, CountCorrect(nil))
	assert.Equal(t, 0, CountCorrect([]ResponseVerdict{}))
}

// CountCorrect всегда равен числу вердиктов с IsCorrect = true в том же списке
func TestCountCorrect_ConsistentWithVerdicts(t *testing.T) {
	// Arrange
	verdicts := []ResponseVerdict{
		{IsCorrect: true},
		{IsCorrect: true},
		{IsCorrect: false},
		{IsCorrect: true},
		{IsCorrect: false},
	}

	// Act
	count := CountCorrect(verdicts)

	// Assert
	manual := 0
	for _, v := range verdicts {
		if v.IsCorrect {
			manual++
		}
	}
	assert.Equal(t, manual, count, "Счет должен быть согласован со списком вердиктов")
}
