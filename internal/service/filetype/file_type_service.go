// Package filetype 提供文件类型列表服务
package filetype

import (
	"context"

	"github.com/insania/files/internal/i18n"
	"github.com/insania/files/internal/logger"
	"github.com/insania/files/internal/service"
	"github.com/insania/files/internal/store"
)

// FileTypeService 文件类型服务接口
type FileTypeService interface {
	// GetList 返回所有未删除的文件类型
	GetList(ctx context.Context) (*service.ListResponse, error)
}

type fileTypeService struct {
	fileTypes store.FileTypeStore
}

// NewFileTypeService 创建文件类型服务实例
func NewFileTypeService(fileTypes store.FileTypeStore) FileTypeService {
	return &fileTypeService{fileTypes: fileTypes}
}

func (s *fileTypeService) GetList(ctx context.Context) (*service.ListResponse, error) {
	logger.Info(i18n.GetInstance().T("entered_get_list_files_types"))

	fileTypes, err := s.fileTypes.GetList(ctx)
	if err != nil {
		logger.Errorf("%s: %v", i18n.GetInstance().T("error"), err)
		return nil, err
	}

	items := make([]service.ListItem, 0, len(fileTypes))
	for _, ft := range fileTypes {
		items = append(items, service.ListItem{ID: ft.ID, Name: ft.Name})
	}
	return service.NewListResponse(items), nil
}
