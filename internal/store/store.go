// Package store 提供文件类型与文件元数据的数据访问
// 所有查询通过 WithContext 传递请求上下文
package store

import (
	"github.com/insania/files/internal/i18n"
	"github.com/insania/files/internal/logger"
)

// logFailure 记录失败并原样返回错误
func logFailure(err error) error {
	logger.Errorf("%s: %v", i18n.GetInstance().T("error"), err)
	return err
}
