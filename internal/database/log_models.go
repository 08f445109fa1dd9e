package database

import (
	"time"

	"gorm.io/datatypes"
)

// LogAPIFiles 文件服务的接口调用日志，仅追加
// DataIn / DataOut 为JSON，postgres下为jsonb并建有GIN索引，sqlite下为JSON文本
type LogAPIFiles struct {
	ID         int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IsSystem   bool           `gorm:"column:is_system;not null" json:"is_system"`
	Method     string         `gorm:"column:method;not null" json:"method"`
	Type       string         `gorm:"column:type;not null" json:"type"`
	Success    bool           `gorm:"column:success;not null" json:"success"`
	DateStart  time.Time      `gorm:"column:date_start;not null" json:"date_start"`
	DateEnd    *time.Time     `gorm:"column:date_end" json:"date_end,omitempty"`
	DataIn     datatypes.JSON `gorm:"column:data_in" json:"data_in,omitempty"`
	DataOut    datatypes.JSON `gorm:"column:data_out" json:"data_out,omitempty"`
	StatusCode *int           `gorm:"column:status_code" json:"status_code,omitempty"`
	Audit
}

// TableName 指定LogAPIFiles模型对应的数据库表名
func (LogAPIFiles) TableName() string {
	return "r_logs_api_files"
}

// NewLogAPIFiles 创建接口日志
func NewLogAPIFiles(username string, isSystem bool, method, requestType string, dataIn datatypes.JSON) *LogAPIFiles {
	audit := newAudit(username, nil)
	return &LogAPIFiles{
		IsSystem:  isSystem,
		Method:    method,
		Type:      requestType,
		DateStart: audit.DateCreate,
		DataIn:    dataIn,
		Audit:     audit,
	}
}

// SetResult 记录接口的结束状态
func (l *LogAPIFiles) SetResult(success bool, statusCode int, dataOut datatypes.JSON) {
	now := time.Now().UTC()
	l.Success = success
	l.StatusCode = &statusCode
	l.DataOut = dataOut
	l.DateEnd = &now
}
