package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/insania/files/internal/response"
)

// 就绪检查中单个依赖的超时时间
const readinessTimeout = 3 * time.Second

// Pinger 可检查连接的依赖
type Pinger func(ctx context.Context) error

// HealthHandler 健康检查处理器
type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler 创建健康检查处理器，checks 的键为依赖名
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Live 存活检查
func (h *HealthHandler) Live(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "ok",
		"message": "Service is running",
	})
}

// Ready 就绪检查，任一依赖不可用时返回503
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := make(map[string]string, len(h.checks))
	ready := true

	for name, ping := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		err := ping(ctx)
		cancel()

		if err != nil {
			checks[name] = err.Error()
			ready = false
			continue
		}
		checks[name] = "ok"
	}

	if !ready {
		response.ServiceUnavailable(c, gin.H{"status": "fail", "checks": checks})
		return
	}
	response.Success(c, gin.H{"status": "ok", "checks": checks})
}
