package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые мы различаем
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	return hasPgCode(err, pgUniqueViolation)
}

// isIntegrityViolation проверяет нарушение ссылочной целостности (23503/23502)
// для pgconn и lib/pq драйверов
func isIntegrityViolation(err error) bool {
	return hasPgCode(err, pgForeignKeyViolation) || hasPgCode(err, pgNotNullViolation)
}

func hasPgCode(err error, code string) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == code {
		return true
	}
	return false
}
