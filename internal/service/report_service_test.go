package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// MockReportRepository реализует repository.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(report *entity.QuestionReport) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) GetAll(limit, offset int) ([]entity.QuestionReport, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.QuestionReport), args.Error(1)
}

// recordingEmailService фиксирует отправленные уведомления
type recordingEmailService struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func newRecordingEmailService() *recordingEmailService {
	return &recordingEmailService{done: make(chan struct{}, 1)}
}

func (s *recordingEmailService) SendReportNotification(ctx context.Context, toEmail, reference, questionText, description string) error {
	s.mu.Lock()
	s.sent = append(s.sent, reference)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func TestReportService_SubmitReport_Success(t *testing.T) {
	// Arrange
	mockReportRepo := new(MockReportRepository)
	mockQuestionRepo := new(MockQuestionRepository)
	emailService := newRecordingEmailService()

	mockQuestionRepo.On("GetByID", uint(5)).Return(&entity.Question{ID: 5, Text: "Что такое TCP?"}, nil)
	mockReportRepo.On("Create", mock.AnythingOfType("*entity.QuestionReport")).Return(nil)

	reportService := NewReportService(mockReportRepo, mockQuestionRepo, emailService, "admin@example.com")

	// Act
	report, err := reportService.SubmitReport("u1", 5, "Вопрос содержит опечатку в третьем варианте")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "u1", report.UserID)
	assert.Equal(t, uint(5), report.QuestionID)
	assert.NotEmpty(t, report.Reference)

	// Уведомление уходит асинхронно
	select {
	case <-emailService.done:
	case <-time.After(2 * time.Second):
		t.Fatal("email notification was not sent")
	}
	emailService.mu.Lock()
	assert.Equal(t, []string{report.Reference}, emailService.sent)
	emailService.mu.Unlock()

	mockReportRepo.AssertExpectations(t)
	mockQuestionRepo.AssertExpectations(t)
}

func TestReportService_SubmitReport_NoNotifyEmail(t *testing.T) {
	// Arrange
	mockReportRepo := new(MockReportRepository)
	mockQuestionRepo := new(MockQuestionRepository)
	emailService := newRecordingEmailService()

	mockQuestionRepo.On("GetByID", uint(5)).Return(&entity.Question{ID: 5, Text: "Что такое TCP?"}, nil)
	mockReportRepo.On("Create", mock.AnythingOfType("*entity.QuestionReport")).Return(nil)

	// Пустой notifyEmail — уведомления выключены
	reportService := NewReportService(mockReportRepo, mockQuestionRepo, emailService, "")

	// Act
	report, err := reportService.SubmitReport("u1", 5, "Вопрос содержит опечатку")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, report)

	select {
	case <-emailService.done:
		t.Fatal("notification must not be sent when notify email is empty")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestReportService_SubmitReport_QuestionNotFound(t *testing.T) {
	// Arrange
	mockReportRepo := new(MockReportRepository)
	mockQuestionRepo := new(MockQuestionRepository)

	mockQuestionRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	reportService := NewReportService(mockReportRepo, mockQuestionRepo, &NoopEmailService{}, "")

	// Act
	report, err := reportService.SubmitReport("u1", 99, "Вопрос содержит опечатку")

	// Assert
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockReportRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReportService_SubmitReport_EmptyDescription(t *testing.T) {
	// Arrange
	reportService := NewReportService(new(MockReportRepository), new(MockQuestionRepository), &NoopEmailService{}, "")

	// Act
	report, err := reportService.SubmitReport("u1", 5, "   ")

	// Assert
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReportService_SubmitReport_RepositoryFailure(t *testing.T) {
	// Arrange
	mockReportRepo := new(MockReportRepository)
	mockQuestionRepo := new(MockQuestionRepository)

	mockQuestionRepo.On("GetByID", uint(5)).Return(&entity.Question{ID: 5, Text: "Что такое TCP?"}, nil)
	mockReportRepo.On("Create", mock.AnythingOfType("*entity.QuestionReport")).
		Return(errors.New("connection refused"))

	reportService := NewReportService(mockReportRepo, mockQuestionRepo, &NoopEmailService{}, "")

	// Act
	report, err := reportService.SubmitReport("u1", 5, "Вопрос содержит опечатку")

	// Assert
	require.Error(t, err)
	assert.Nil(t, report)
}
