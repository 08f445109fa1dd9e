package store

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/insania/files/internal/database"
	"github.com/insania/files/internal/errors"
	"github.com/insania/files/internal/i18n"
	"github.com/insania/files/internal/logger"
)

// FileTypeStore 文件类型数据访问接口
type FileTypeStore interface {
	// GetList 返回所有未删除的文件类型，按ID排序
	GetList(ctx context.Context) ([]database.FileType, error)

	// GetByID 按ID读取文件类型，包含已删除的记录
	// 记录不存在时返回 nil, nil
	// id 为空时返回 EmptyFileType
	GetByID(ctx context.Context, id *int64) (*database.FileType, error)
}

type fileTypeStore struct {
	db *gorm.DB
}

// NewFileTypeStore 创建文件类型数据访问实例
// 传入事务时所有查询都在该事务内执行
func NewFileTypeStore(db *gorm.DB) FileTypeStore {
	return &fileTypeStore{db: db}
}

func (s *fileTypeStore) GetList(ctx context.Context) ([]database.FileType, error) {
	logger.Info(i18n.GetInstance().T("entered_get_list_files_types"))

	var fileTypes []database.FileType
	err := s.db.WithContext(ctx).
		Where("date_deleted IS NULL").
		Order("id").
		Find(&fileTypes).Error
	if err != nil {
		return nil, logFailure(errors.Wrap(errors.ErrGeneric, err))
	}
	return fileTypes, nil
}

func (s *fileTypeStore) GetByID(ctx context.Context, id *int64) (*database.FileType, error) {
	logger.Info(i18n.GetInstance().T("entered_get_by_id_file_type"))

	if id == nil {
		return nil, logFailure(errors.New(errors.ErrEmptyFileType))
	}

	var fileType database.FileType
	err := s.db.WithContext(ctx).Where("id = ?", *id).First(&fileType).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, logFailure(errors.Wrap(errors.ErrGeneric, err))
	}
	return &fileType, nil
}
