package response

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 失败响应
type ErrorResponse struct {
	// 错误消息
	Message string `json:"message" example:"Файл удалён в зоне файлов"`
}

// Success 成功响应，data 原样序列化为JSON
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应
// 所有业务与存储错误都以400返回，消息为错误文本
func Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
}

// Stream 以指定的内容类型返回文件内容
// size 小于0时不设置 Content-Length
func Stream(c *gin.Context, contentType string, size int64, reader io.Reader) {
	c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
}

// ServiceUnavailable 依赖不可用
func ServiceUnavailable(c *gin.Context, data interface{}) {
	c.JSON(http.StatusServiceUnavailable, data)
}
