package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/handler/dto"
	"github.com/yourusername/quiz-api/internal/service"
)

// ReportHandler обрабатывает жалобы пользователей на вопросы
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler создает новый обработчик жалоб
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SubmitReportRequest представляет запрос на жалобу по вопросу
type SubmitReportRequest struct {
	UserID      string `json:"uId" binding:"required"`
	QuestionID  uint   `json:"questionId" binding:"required"`
	Description string `json:"description" binding:"required,min=5,max=1000"`
}

// SubmitReport принимает жалобу на вопрос и возвращает ее регистрационный код.
// POST /api/report-question
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	report, err := h.reportService.SubmitReport(req.UserID, req.QuestionID, req.Description)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewReportResponse(report))
}

// GetReports возвращает жалобы с пагинацией.
// GET /api/admin/reports (только для администратора)
func (h *ReportHandler) GetReports(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	reports, err := h.reportService.GetReports(limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"total":   len(reports),
	})
}
