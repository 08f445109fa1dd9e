package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/insania/files/internal/response"
	filetypeservice "github.com/insania/files/internal/service/filetype"
)

// FileTypeHandler 文件类型处理器
type FileTypeHandler struct {
	fileTypeService filetypeservice.FileTypeService
}

// NewFileTypeHandler 创建文件类型处理器实例
func NewFileTypeHandler(fileTypeService filetypeservice.FileTypeService) *FileTypeHandler {
	return &FileTypeHandler{fileTypeService: fileTypeService}
}

// GetList 返回所有未删除的文件类型
// @Summary 获取文件类型列表
// @Tags 文件类型
// @Produce json
// @Success 200 {object} service.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /files_types/list [get]
func (h *FileTypeHandler) GetList(c *gin.Context) {
	result, err := h.fileTypeService.GetList(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result)
}
