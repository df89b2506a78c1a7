package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	"github.com/yourusername/quiz-api/internal/handler/dto"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuizHandler обрабатывает сборку тестов, отправку ответов и историю попыток
type QuizHandler struct {
	assemblerService *service.AssemblerService
	attemptService   *service.AttemptService
}

// NewQuizHandler создает новый обработчик тестов
func NewQuizHandler(
	assemblerService *service.AssemblerService,
	attemptService *service.AttemptService,
) *QuizHandler {
	return &QuizHandler{
		assemblerService: assemblerService,
		attemptService:   attemptService,
	}
}

// GetTest возвращает собранный тест без флагов правильности.
// GET /api/quiz/test?isTraining=true|false
func (h *QuizHandler) GetTest(c *gin.Context) {
	isTrainingStr := c.DefaultQuery("isTraining", "false")
	isTraining, err := strconv.ParseBool(isTrainingStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      fmt.Sprintf("invalid isTraining value %q", isTrainingStr),
			"error_type": "validation",
		})
		return
	}

	questions, err := h.assemblerService.AssembleTest(isTraining)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTestResponse(questions))
}

// SubmitTestRequest представляет запрос на отправку ответов теста
type SubmitTestRequest struct {
	UserID    string `json:"uId" binding:"required"`
	Responses []struct {
		QuestionID uint `json:"questionId" binding:"required"`
		OptionID   uint `json:"optionId" binding:"required"`
	} `json:"responses" binding:"required,min=1"`
}

// SubmitTest записывает все ответы одной атомарной попыткой и возвращает итоговый счет.
// POST /api/quiz/test
func (h *QuizHandler) SubmitTest(c *gin.Context) {
	var req SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	answers := make([]entity.AnswerPair, len(req.Responses))
	for i, r := range req.Responses {
		answers[i] = entity.AnswerPair{
			QuestionID: r.QuestionID,
			OptionID:   r.OptionID,
		}
	}

	result, err := h.attemptService.Submit(req.UserID, answers)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSubmitResultResponse(result))
}

// GetAttempts возвращает историю попыток пользователя со счетами.
// GET /api/quiz/attempts?userId=
func (h *QuizHandler) GetAttempts(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required", "error_type": "validation"})
		return
	}

	summaries, err := h.attemptService.GetUserAttempts(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempts": dto.NewAttemptSummaryListResponse(summaries),
		"total":    len(summaries),
	})
}

// ExportAttempts экспортирует сводки по всем попыткам в CSV или Excel формате.
// GET /api/admin/attempts/export?format=csv|xlsx
func (h *QuizHandler) ExportAttempts(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	// Для экспорта выгружаем все попытки, постранично до последней
	summaries, err := h.attemptService.GetAllAttemptSummaries()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("attempts_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, summaries, filename)
	default:
		h.exportCSV(c, summaries, filename)
	}
}

// exportCSV экспортирует сводки в CSV с правильным экранированием спецсимволов
func (h *QuizHandler) exportCSV(c *gin.Context, summaries []repository.AttemptSummary, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID попытки", "Пользователь", "Всего вопросов", "Правильных", "Дата"})

	for _, s := range summaries {
		writer.Write([]string{
			strconv.FormatUint(uint64(s.TestAttemptID), 10),
			sanitizeForExcel(s.UserID),
			strconv.Itoa(s.TotalQuestions),
			strconv.Itoa(s.CorrectCount),
			s.CreatedAt,
		})
	}
}

// exportXLSX экспортирует сводки в Excel с использованием StreamWriter
func (h *QuizHandler) exportXLSX(c *gin.Context, summaries []repository.AttemptSummary, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Попытки"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"ID попытки", "Пользователь", "Всего вопросов", "Правильных", "Дата"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuizHandler] Ошибка записи заголовков: %v", err)
	}

	for i, s := range summaries {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		row := []interface{}{s.TestAttemptID, sanitizeForExcel(s.UserID), s.TotalQuestions, s.CorrectCount, s.CreatedAt}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Ошибка записи Excel в response: %v", err)
	}
}
