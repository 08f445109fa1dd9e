package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/insania/files/internal/i18n"
)

// ErrorCode 错误码类型
type ErrorCode int

// 错误码按分类分段
const (
	// 通用错误 (1000-1999)
	ErrGeneric ErrorCode = 1000 // 通用错误

	// 参数校验错误 (2000-2999): 调用方缺少必填标识
	ErrEmptyFile     ErrorCode = 2000 // 缺少文件标识
	ErrEmptyEntity   ErrorCode = 2001 // 缺少实体标识
	ErrEmptyFileType ErrorCode = 2002 // 缺少文件类型标识

	// 未找到 (3000-3999): 记录或磁盘文件不存在
	ErrNotFoundFile     ErrorCode = 3000 // 文件不存在
	ErrNotFoundFileType ErrorCode = 3001 // 文件类型不存在

	// 状态冲突 (4000-4999): 记录存在但已软删除
	ErrDeletedFile     ErrorCode = 4000 // 文件已删除
	ErrDeletedFileType ErrorCode = 4001 // 文件类型已删除

	// 内容类型不匹配 (5000-5999)
	ErrIncorrectContentType ErrorCode = 5000 // 扩展名没有对应的MIME类型

	// 基础设施错误 (6000-6999)
	ErrEmptyConnectionString ErrorCode = 6000 // 缺少数据库连接串
	ErrEmptyScriptsPath      ErrorCode = 6001 // 缺少脚本目录
	ErrNotExecutedScript     ErrorCode = 6002 // 脚本执行失败
)

// AppError 应用错误结构体
type AppError struct {
	// 错误码
	Code ErrorCode `json:"code"`
	// 错误消息
	Message string `json:"message"`
	// 详细错误信息
	Details string `json:"details,omitempty"`
	// 原始错误
	OriginalError error `json:"-"`
}

// Error 实现error接口
// 返回的文本即为接口层返回给客户端的message
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// Unwrap 返回原始错误
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Is 按错误码比较，使 errors.Is(err, ErrXxx) 可用
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetails 返回附带详细信息的副本
func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithOriginalError 返回附带原始错误的副本
func (e *AppError) WithOriginalError(err error) *AppError {
	cp := *e
	cp.OriginalError = err
	if cp.Details == "" && err != nil {
		cp.Details = err.Error()
	}
	return &cp
}

// New 创建新的应用错误，消息取自默认语言
func New(code ErrorCode) *AppError {
	return &AppError{
		Code:    code,
		Message: GetErrorMessage(code),
	}
}

// Wrap 包装原始错误
func Wrap(code ErrorCode, err error) *AppError {
	return New(code).WithOriginalError(err)
}

// GetAppError 从错误链中提取应用错误
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode 判断错误链中是否包含指定错误码
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.Code == code
}

// 预定义错误，仅用于 errors.Is 比较，返回错误时请使用 New 创建
var (
	ErrEmptyFileError             = &AppError{Code: ErrEmptyFile}
	ErrEmptyEntityError           = &AppError{Code: ErrEmptyEntity}
	ErrEmptyFileTypeError         = &AppError{Code: ErrEmptyFileType}
	ErrNotFoundFileError          = &AppError{Code: ErrNotFoundFile}
	ErrNotFoundFileTypeError      = &AppError{Code: ErrNotFoundFileType}
	ErrDeletedFileError           = &AppError{Code: ErrDeletedFile}
	ErrDeletedFileTypeError       = &AppError{Code: ErrDeletedFileType}
	ErrIncorrectContentTypeError  = &AppError{Code: ErrIncorrectContentType}
	ErrEmptyConnectionStringError = &AppError{Code: ErrEmptyConnectionString}
	ErrEmptyScriptsPathError      = &AppError{Code: ErrEmptyScriptsPath}
)

// 错误码到i18n键的映射
var errorCodeToKeyMap = map[ErrorCode]string{
	ErrGeneric:               "error",
	ErrEmptyFile:             "empty_file",
	ErrEmptyEntity:           "empty_entity",
	ErrEmptyFileType:         "empty_file_type",
	ErrNotFoundFile:          "not_found_file",
	ErrNotFoundFileType:      "not_found_file_type",
	ErrDeletedFile:           "deleted_file",
	ErrDeletedFileType:       "deleted_file_type",
	ErrIncorrectContentType:  "incorrect_content_type",
	ErrEmptyConnectionString: "empty_connection_string",
	ErrEmptyScriptsPath:      "empty_scripts_path",
	ErrNotExecutedScript:     "not_executed_script",
}

// GetErrorMessage 根据错误码获取错误消息（使用默认语言）
func GetErrorMessage(code ErrorCode) string {
	return GetErrorMessageWithLang(code, i18n.GetInstance().GetDefaultLanguage())
}

// GetErrorMessageWithLang 根据错误码和语言获取错误消息
func GetErrorMessageWithLang(code ErrorCode, lang string) string {
	key, exists := errorCodeToKeyMap[code]
	if !exists {
		key = "unknown_error"
	}
	return i18n.GetInstance().Translate(key, lang)
}
