// Package handler 提供HTTP接口处理器
// 查询参数中的整数无法解析时视为未传
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/insania/files/internal/i18n"
	"github.com/insania/files/internal/logger"
	"github.com/insania/files/internal/response"
)

// queryInt64 读取整数查询参数
func queryInt64(c *gin.Context, key string) *int64 {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// fail 记录错误并返回400
func fail(c *gin.Context, err error) {
	logger.WithField("path", c.Request.URL.Path).Errorf("%s: %v", i18n.GetInstance().T("error"), err)
	response.Error(c, err)
}
