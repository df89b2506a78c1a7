package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestGinContext создает *gin.Context для тестов с JSON body
func newTestGinContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, path, bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// ============================================================================
// Request validation tests — не требуют реальных сервисов,
// handler возвращает 400 до обращения к ним
// ============================================================================

func TestSubmitTest_ValidationErrors(t *testing.T) {
	handler := &QuizHandler{} // nil services — OK для validation tests

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "empty body",
			body:       nil,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing uId",
			body:       map[string]interface{}{"responses": []map[string]uint{{"questionId": 1, "optionId": 10}}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing responses",
			body:       map[string]interface{}{"uId": "u1"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty responses",
			body:       map[string]interface{}{"uId": "u1", "responses": []map[string]uint{}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext("POST", "/api/quiz/test", tt.body)
			handler.SubmitTest(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, "validation", resp["error_type"])
		})
	}
}

func TestGetTest_InvalidModeValue(t *testing.T) {
	handler := &QuizHandler{}

	c, w := newTestGinContext("GET", "/api/quiz/test", nil)
	c.Request.URL.RawQuery = "isTraining=sometimes"
	handler.GetTest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, "validation", resp["error_type"])
	assert.Contains(t, resp["error"], "isTraining")
}

func TestGetAttempts_MissingUserID(t *testing.T) {
	handler := &QuizHandler{}

	c, w := newTestGinContext("GET", "/api/quiz/attempts", nil)
	handler.GetAttempts(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, "validation", resp["error_type"])
}

func TestSanitizeForExcel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user1", "user1"},
		{"", ""},
		{"=cmd()", "'=cmd()"},
		{"+1+1", "'+1+1"},
		{"-1", "'-1"},
		{"@SUM(A1)", "'@SUM(A1)"},
		{"\tvalue", "'\tvalue"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeForExcel(tt.in), "input: %q", tt.in)
	}
}
