package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func newQuestionServiceWithMocks(
	questionRepo *MockQuestionRepository,
	categoryRepo *MockCategoryRepository,
) *QuestionService {
	assembler := NewAssemblerService(questionRepo, nil, DefaultTestSize)
	return NewQuestionService(questionRepo, categoryRepo, assembler)
}

func TestQuestionService_CreateQuestion_Success(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockCategoryRepo := new(MockCategoryRepository)

	mockCategoryRepo.On("GetByID", uint(1)).Return(&entity.Category{ID: 1, Name: "Сети"}, nil)
	mockQuestionRepo.On("CreateWithOptions", mock.AnythingOfType("*entity.Question"), mock.AnythingOfType("[]entity.Option")).
		Return(nil)

	questionService := newQuestionServiceWithMocks(mockQuestionRepo, mockCategoryRepo)

	// Act
	question, err := questionService.CreateQuestion(
		"Какой порт у HTTPS по умолчанию?", 1, false,
		[]string{"80", "443", "8080", "22"}, 1,
	)

	// Assert: ровно один вариант помечен правильным, и это вариант по индексу 1
	require.NoError(t, err)
	require.NotNil(t, question)
	require.Len(t, question.Options, 4)

	correctCount := 0
	for i, opt := range question.Options {
		if opt.IsCorrect {
			correctCount++
			assert.Equal(t, 1, i, "Правильным должен быть вариант по индексу 1")
			assert.Equal(t, "443", opt.Text)
		}
	}
	assert.Equal(t, 1, correctCount, "Ровно один вариант должен быть правильным")
	mockQuestionRepo.AssertExpectations(t)
}

func TestQuestionService_CreateQuestion_CorrectIndexOutOfRange(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	questionService := newQuestionServiceWithMocks(mockQuestionRepo, mockCategoryRepo)

	// Act
	question, err := questionService.CreateQuestion("Вопрос", 1, false, []string{"A", "B"}, 5)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, question)
	mockQuestionRepo.AssertNotCalled(t, "CreateWithOptions")
}

func TestQuestionService_CreateQuestion_TooFewOptions(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	questionService := newQuestionServiceWithMocks(mockQuestionRepo, mockCategoryRepo)

	// Act
	question, err := questionService.CreateQuestion("Вопрос", 1, false, []string{"Единственный"}, 0)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, question)
}

func TestQuestionService_CreateQuestion_UnknownCategory(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	mockCategoryRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	questionService := newQuestionServiceWithMocks(mockQuestionRepo, mockCategoryRepo)

	// Act
	question, err := questionService.CreateQuestion("Вопрос", 99, true, []string{"A", "B"}, 0)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, question)
	mockQuestionRepo.AssertNotCalled(t, "CreateWithOptions")
}
