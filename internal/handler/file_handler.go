package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/insania/files/internal/response"
	fileservice "github.com/insania/files/internal/service/file"
)

// FileHandler 文件处理器
type FileHandler struct {
	fileService fileservice.FileService
}

// NewFileHandler 创建文件处理器实例
func NewFileHandler(fileService fileservice.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// GetByID 按ID返回文件内容
// @Summary 获取文件
// @Tags 文件
// @Produce octet-stream
// @Param id query int true "文件ID"
// @Success 200 {file} file "文件内容"
// @Failure 400 {object} response.ErrorResponse
// @Router /files/by_id [get]
func (h *FileHandler) GetByID(c *gin.Context) {
	result, err := h.fileService.GetByID(c.Request.Context(), queryInt64(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	defer result.Stream.Close()

	response.Stream(c, result.ContentType, result.Size, result.Stream)
}

// GetList 返回实体下指定类型的文件列表
// @Summary 获取文件列表
// @Tags 文件
// @Produce json
// @Param entity_id query int true "实体ID"
// @Param type_id query int true "文件类型ID"
// @Success 200 {object} service.ListResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /files/list [get]
func (h *FileHandler) GetList(c *gin.Context) {
	result, err := h.fileService.GetList(c.Request.Context(), queryInt64(c, "entity_id"), queryInt64(c, "type_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result)
}
