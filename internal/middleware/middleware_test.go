package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lmsdash/internal/app/models/dto"
	"github.com/yigit/lmsdash/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantErrors  []string
	}{
		{
			name:        "not found keeps entity message",
			err:         apperrors.ErrCourseNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "Course not found",
		},
		{
			name:        "bare not found",
			err:         fmt.Errorf("lookup: %w", apperrors.ErrResourceNotFound),
			wantCode:    http.StatusNotFound,
			wantMessage: "Resource not found",
		},
		{
			name:        "validation lists details",
			err:         apperrors.NewValidationError("title is required"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Validation failed",
			wantErrors:  []string{"title is required"},
		},
		{
			name:        "bad request",
			err:         apperrors.NewBadRequestError("Invalid update payload"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid update payload",
		},
		{
			name:        "conflict",
			err:         apperrors.ErrUsernameTaken,
			wantCode:    http.StatusConflict,
			wantMessage: "Username already exists",
		},
		{
			name:        "internal error hides cause",
			err:         errors.New("map exploded at 0xdeadbeef"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Failed to fetch courses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/courses", nil)

			HandleAPIError(c, tt.err, "Failed to fetch courses")

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantErrors, body.Errors)
			assert.NotContains(t, rec.Body.String(), "0xdeadbeef")
		})
	}
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/boom", func(*gin.Context) { panic("secret detail") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
	assert.NotContains(t, rec.Body.String(), "secret detail")
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:5173"}))
	router.GET("/api/user", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name       string
		method     string
		origin     string
		wantCode   int
		wantHeader string
	}{
		{name: "allowed origin", method: http.MethodGet, origin: "http://localhost:5173", wantCode: http.StatusOK, wantHeader: "http://localhost:5173"},
		{name: "other origin", method: http.MethodGet, origin: "http://evil.test", wantCode: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "http://localhost:5173", wantCode: http.StatusNoContent, wantHeader: "http://localhost:5173"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/user", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
