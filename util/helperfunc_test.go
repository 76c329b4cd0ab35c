package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallServerError_HidesInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users", nil)

	CallServerError(c, APIErrorParams{
		Msg: "Failed to fetch users",
		Err: errors.New("dial tcp 10.0.0.5:3306: connection refused"),
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "internal server error", resp.Error)
	assert.Equal(t, "Failed to fetch users", resp.Msg)
}

func TestResponseHelpers_StatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name   string
		call   func(c *gin.Context)
		status int
	}{
		{"not found", func(c *gin.Context) { CallErrorNotFound(c, APIErrorParams{Msg: "m", Err: errors.New("e")}) }, http.StatusNotFound},
		{"user error", func(c *gin.Context) { CallUserError(c, APIErrorParams{Msg: "m", Err: errors.New("e")}) }, http.StatusBadRequest},
		{"unauthorized", func(c *gin.Context) { CallUserNotAuthorized(c, APIErrorParams{Msg: "m", Err: errors.New("e")}) }, http.StatusUnauthorized},
		{"ok", func(c *gin.Context) { CallSuccessOK(c, APISuccessParams{Msg: "m"}) }, http.StatusOK},
		{"created", func(c *gin.Context) { CallSuccessCreated(c, APISuccessParams{Msg: "m"}) }, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.call(c)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trim leading whitespace",
			input:    "  John Doe",
			expected: "John Doe",
		},
		{
			name:     "trim trailing whitespace",
			input:    "John Doe  ",
			expected: "John Doe",
		},
		{
			name:     "trim leading and trailing whitespace",
			input:    "  John Doe  ",
			expected: "John Doe",
		},
		{
			name:     "collapse multiple internal spaces",
			input:    "John  Doe",
			expected: "John Doe",
		},
		{
			name:     "collapse many internal spaces",
			input:    "John     Doe",
			expected: "John Doe",
		},
		{
			name:     "trim and collapse combined",
			input:    "  John    Doe  ",
			expected: "John Doe",
		},
		{
			name:     "already normalized",
			input:    "John Doe",
			expected: "John Doe",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "tabs and newlines",
			input:    "John\t\nDoe",
			expected: "John Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
