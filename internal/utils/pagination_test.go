package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/applications?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	cases := []struct {
		query string
		want  PaginationParams
	}{
		{"", PaginationParams{}},
		{"status=offer", PaginationParams{}},
		{"limit=5", PaginationParams{Page: 1, Limit: 5}},
		{"page=3&limit=10", PaginationParams{Page: 3, Limit: 10}},
		{"page=0&limit=500", PaginationParams{Page: 1, Limit: DefaultPageLimit}},
		{"page=2", PaginationParams{Page: 2, Limit: DefaultPageLimit}},
		{"limit=abc", PaginationParams{Page: 1, Limit: DefaultPageLimit}},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			assert.Equal(t, tc.want, GetPaginationParams(contextWithQuery(tc.query)))
		})
	}
}

func TestCreatePaginationResultAndHeaders(t *testing.T) {
	result := CreatePaginationResult(41, PaginationParams{Page: 2, Limit: 20})
	assert.Equal(t, PaginationResult{Page: 2, Limit: 20, Total: 41, TotalPages: 3}, result)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SetPaginationHeaders(c, result)

	assert.Equal(t, "41", w.Header().Get("X-Total-Count"))
	assert.Equal(t, "2", w.Header().Get("X-Page"))
	assert.Equal(t, "20", w.Header().Get("X-Per-Page"))
	assert.Equal(t, "3", w.Header().Get("X-Total-Pages"))
}
