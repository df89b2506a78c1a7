package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// handleServiceError преобразует ошибки сервисов в HTTP ответ.
// Ошибки целостности попытки возвращаются как 400, чтобы клиент
// отличал отклоненную отправку от внутреннего сбоя.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrIntegrityViolation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      err.Error(),
			"error_type": "integrity_violation",
		})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      err.Error(),
			"error_type": "validation",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":      err.Error(),
			"error_type": "not_found",
		})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":      err.Error(),
			"error_type": "unauthorized",
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":      err.Error(),
			"error_type": "conflict",
		})
	default:
		log.Printf("ERROR: Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Internal server error",
			"error_type": "internal",
		})
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
