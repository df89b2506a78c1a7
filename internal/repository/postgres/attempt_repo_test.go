package postgres

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// newMockDB поднимает GORM поверх sqlmock: все SQL-запросы перехватываются,
// настоящая база не нужна
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestAttemptRepo_SubmitAndScore_UnknownPairRollsBack(t *testing.T) {
	// Arrange: вариант 10 не принадлежит вопросу 1 — проверка пар находит ноль
	// строк, транзакция откатывается до любых вставок
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "options" WHERE id = $1 AND question_id = $2`)).
		WithArgs(10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	attemptRepo := NewAttemptRepo(db)

	// Act
	scored, err := attemptRepo.SubmitAndScore("u1", []entity.AnswerPair{
		{QuestionID: 1, OptionID: 10},
	})

	// Assert: ошибка целостности, и ни одного INSERT в test_attempts или
	// responses мок не увидел
	assert.Nil(t, scored)
	assert.ErrorIs(t, err, repository.ErrIntegrityViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptRepo_SubmitAndScore_ResponseInsertFailureRollsBack(t *testing.T) {
	// Arrange: пары валидны, попытка вставлена, но пакетная вставка ответов
	// падает на нарушении внешнего ключа — попытка не должна пережить откат
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "options" WHERE id = $1 AND question_id = $2`)).
		WithArgs(10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "options" WHERE id = $1 AND question_id = $2`)).
		WithArgs(21, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "test_attempts"`)).
		WithArgs("u1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "responses"`)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	attemptRepo := NewAttemptRepo(db)

	// Act
	scored, err := attemptRepo.SubmitAndScore("u1", []entity.AnswerPair{
		{QuestionID: 1, OptionID: 10},
		{QuestionID: 2, OptionID: 21},
	})

	// Assert
	assert.Nil(t, scored)
	assert.ErrorIs(t, err, repository.ErrIntegrityViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptRepo_SubmitAndScore_CommitsAndScores(t *testing.T) {
	// Arrange: один валидный ответ, вставки проходят, подсчет идет в той же
	// транзакции и транзакция фиксируется
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "options" WHERE id = $1 AND question_id = $2`)).
		WithArgs(10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "test_attempts"`)).
		WithArgs("u1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "responses"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM responses resp`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"question_text", "option_text", "is_correct"}).
			AddRow("Вопрос 1", "Правильный вариант", true))
	mock.ExpectCommit()

	attemptRepo := NewAttemptRepo(db)

	// Act
	scored, err := attemptRepo.SubmitAndScore("u1", []entity.AnswerPair{
		{QuestionID: 1, OptionID: 10},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(7), scored.Attempt.ID)
	assert.Equal(t, 1, scored.CorrectCount)
	require.Len(t, scored.Verdicts, 1)
	assert.True(t, scored.Verdicts[0].IsCorrect)
	assert.NoError(t, mock.ExpectationsWereMet())
}
