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

// FileStore 文件元数据访问接口
type FileStore interface {
	// GetList 返回所有未删除的文件，按ID排序
	GetList(ctx context.Context) ([]database.File, error)

	// GetByID 按ID读取文件，包含已删除的记录
	// 记录不存在时返回 nil, nil；id 为空时返回 EmptyFile
	GetByID(ctx context.Context, id *int64) (*database.File, error)

	// GetListByEntity 返回属于指定实体且为指定类型的未删除文件
	// 先校验实体再校验类型: EmptyEntity, EmptyFileType
	GetListByEntity(ctx context.Context, entityID, typeID *int64) ([]database.File, error)
}

type fileStore struct {
	db *gorm.DB
}

// NewFileStore 创建文件元数据访问实例
func NewFileStore(db *gorm.DB) FileStore {
	return &fileStore{db: db}
}

func (s *fileStore) GetList(ctx context.Context) ([]database.File, error) {
	logger.Info(i18n.GetInstance().T("entered_get_list_files"))

	var files []database.File
	err := s.db.WithContext(ctx).
		Where("date_deleted IS NULL").
		Order("id").
		Find(&files).Error
	if err != nil {
		return nil, logFailure(errors.Wrap(errors.ErrGeneric, err))
	}
	return files, nil
}

func (s *fileStore) GetByID(ctx context.Context, id *int64) (*database.File, error) {
	logger.Info(i18n.GetInstance().T("entered_get_by_id_file"))

	if id == nil {
		return nil, logFailure(errors.New(errors.ErrEmptyFile))
	}

	var file database.File
	err := s.db.WithContext(ctx).Where("id = ?", *id).First(&file).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, logFailure(errors.Wrap(errors.ErrGeneric, err))
	}
	return &file, nil
}

func (s *fileStore) GetListByEntity(ctx context.Context, entityID, typeID *int64) ([]database.File, error) {
	logger.Info(i18n.GetInstance().T("entered_get_list_files"))

	if entityID == nil {
		return nil, logFailure(errors.New(errors.ErrEmptyEntity))
	}
	if typeID == nil {
		return nil, logFailure(errors.New(errors.ErrEmptyFileType))
	}

	var files []database.File
	err := s.db.WithContext(ctx).
		Where("entity_id = ? AND type_id = ? AND date_deleted IS NULL", *entityID, *typeID).
		Order("id").
		Find(&files).Error
	if err != nil {
		return nil, logFailure(errors.Wrap(errors.ErrGeneric, err))
	}
	return files, nil
}
