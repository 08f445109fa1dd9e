package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/insania/files/config"
	"github.com/insania/files/internal/database"
	"github.com/insania/files/internal/logger"
)

// RequestIDKey 请求ID在gin上下文中的键，同时作为响应头返回
const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// 接口日志的记录人
const requestLogUsername = "api"

// 异步写入接口日志的超时时间
const writeTimeout = 5 * time.Second

// RequestLogWriter 接口日志存储
type RequestLogWriter interface {
	Write(ctx context.Context, entry *database.LogAPIFiles) error
}

type gormRequestLogWriter struct {
	db *gorm.DB
}

// NewRequestLogWriter 创建写入接口日志库的存储
func NewRequestLogWriter(db *gorm.DB) RequestLogWriter {
	return &gormRequestLogWriter{db: db}
}

func (w *gormRequestLogWriter) Write(ctx context.Context, entry *database.LogAPIFiles) error {
	return w.db.WithContext(ctx).Create(entry).Error
}

// responseWriter 捕获状态码与响应体，响应体最多保留 limit 字节
type responseWriter struct {
	gin.ResponseWriter
	body  *bytes.Buffer
	limit int
}

// Write 实现io.Writer接口
func (w *responseWriter) Write(b []byte) (int, error) {
	if remaining := w.limit - w.body.Len(); remaining > 0 {
		if len(b) > remaining {
			w.body.Write(b[:remaining])
		} else {
			w.body.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

// requestData 写入 data_in 的内容
type requestData struct {
	RequestID string              `json:"request_id"`
	Path      string              `json:"path"`
	Query     map[string][]string `json:"query,omitempty"`
	Body      interface{}         `json:"body,omitempty"`
	ClientIP  string              `json:"client_ip"`
	UserAgent string              `json:"user_agent,omitempty"`
}

// responseData 非JSON响应（文件流）写入 data_out 的摘要
type responseData struct {
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// RequestLogger 将每个请求的入参与结果写入接口日志库
// 跳过 cfg.SkipPaths 中的路径
func RequestLogger(cfg config.RequestLogConfig, logs RequestLogWriter) gin.HandlerFunc {
	if !cfg.Enabled || logs == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		dataIn := marshalData(requestData{
			RequestID: requestID,
			Path:      c.Request.URL.Path,
			Query:     parseQueryParams(c.Request.URL.RawQuery),
			Body:      readRequestBody(c, cfg.MaxBodySize),
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})

		entry := database.NewLogAPIFiles(requestLogUsername, false, methodName(c), c.Request.Method, dataIn)

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			limit:          cfg.MaxBodySize,
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		entry.SetResult(status < 400, status, responseBody(writer))

		if cfg.AsyncLogging {
			go persist(logs, entry)
		} else {
			persist(logs, entry)
		}
	}
}

// persist 写入接口日志，失败只记录日志
func persist(logs RequestLogWriter, entry *database.LogAPIFiles) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := logs.Write(ctx, entry); err != nil {
		logger.WithError(err).WithField("method", entry.Method).Error("Failed to persist request log")
	}
}

// methodName 接口名取路由模板，未匹配路由时取请求路径
func methodName(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return c.Request.URL.Path
}

// readRequestBody 读取请求体并重置，供后续处理器读取
func readRequestBody(c *gin.Context, maxSize int) interface{} {
	if c.Request.Body == nil || maxSize <= 0 {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, int64(maxSize)))
	if err != nil {
		return map[string]string{"error": "failed to read request body"}
	}
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))

	if len(body) == 0 {
		return nil
	}
	var jsonBody interface{}
	if err := json.Unmarshal(body, &jsonBody); err == nil {
		return jsonBody
	}
	return string(body)
}

// parseQueryParams 解析查询参数，无法解析时返回nil
func parseQueryParams(rawQuery string) map[string][]string {
	if rawQuery == "" {
		return nil
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil
	}
	return values
}

// responseBody JSON响应原样保存，其余响应只保存类型和大小
func responseBody(w *responseWriter) datatypes.JSON {
	contentType := w.Header().Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") && json.Valid(w.body.Bytes()) {
		return datatypes.JSON(bytes.Clone(w.body.Bytes()))
	}
	return marshalData(responseData{ContentType: contentType, Size: w.Size()})
}

// marshalData 序列化为JSON文本
func marshalData(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("Failed to marshal request log: %v", err)
		return nil
	}
	return datatypes.JSON(data)
}
