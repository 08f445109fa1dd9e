package handler

import (
	"context"
	stderrors "errors"
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

func TestQueryInt64(t *testing.T) {
	cases := []struct {
		query string
		want  *int64
	}{
		{"", nil},
		{"id=", nil},
		{"id=abc", nil},
		{"id=1.5", nil},
		{"id=42", int64Ptr(42)},
		{"id=-1", int64Ptr(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)
			assert.Equal(t, tc.want, queryInt64(c, "id"))
		})
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestReady(t *testing.T) {
	engine := gin.New()
	h := NewHealthHandler(map[string]Pinger{
		"files": func(context.Context) error { return nil },
		"logs":  func(context.Context) error { return stderrors.New("connection refused") },
	})
	engine.GET("/health/ready", h.Ready)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"fail","checks":{"files":"ok","logs":"connection refused"}}`, w.Body.String())
}
