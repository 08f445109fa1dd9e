// Package file 提供文件解析与文件列表服务
// 文件在磁盘上的位置由约定推导: {类型路径}/{类型别名}/{实体ID}/{文件名}
package file

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/insania/files/internal/contenttype"
	"github.com/insania/files/internal/database"
	"github.com/insania/files/internal/errors"
	"github.com/insania/files/internal/i18n"
	"github.com/insania/files/internal/logger"
	"github.com/insania/files/internal/service"
	"github.com/insania/files/internal/store"
)

var (
	// resolutionsTotal 文件解析次数，按结果分类
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "files_resolutions_total",
		Help: "Количество запросов получения файла по результату",
	}, []string{"result"})

	// servedBytesTotal 已打开文件的字节数
	servedBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "files_served_bytes_total",
		Help: "Объём отданных файлов в байтах",
	})
)

// FileResponse 文件解析结果
// Stream 的关闭由调用方负责
type FileResponse struct {
	Success     bool
	Stream      io.ReadCloser
	ContentType string
	Name        string
	Size        int64
}

// FileService 文件服务接口
type FileService interface {
	// GetByID 按ID解析文件并打开磁盘上的内容
	// 校验顺序: EmptyFile, NotFoundFile, DeletedFile, EmptyFileType,
	// DeletedFileType, IncorrectContentType, NotFoundFile(磁盘)
	GetByID(ctx context.Context, id *int64) (*FileResponse, error)

	// GetList 返回实体下指定类型的文件列表
	GetList(ctx context.Context, entityID, typeID *int64) (*service.ListResponse, error)
}

type fileService struct {
	files     store.FileStore
	fileTypes store.FileTypeStore
}

// NewFileService 创建文件服务实例
func NewFileService(files store.FileStore, fileTypes store.FileTypeStore) FileService {
	return &fileService{
		files:     files,
		fileTypes: fileTypes,
	}
}

func (s *fileService) GetByID(ctx context.Context, id *int64) (*FileResponse, error) {
	logger.Info(i18n.GetInstance().T("entered_get_by_id_file"))

	if id == nil {
		return nil, fail(errors.New(errors.ErrEmptyFile))
	}

	file, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, fail(err)
	}
	if file == nil {
		return nil, fail(errors.New(errors.ErrNotFoundFile))
	}
	if file.IsDeleted() {
		return nil, fail(errors.New(errors.ErrDeletedFile))
	}

	fileType, err := s.fileTypes.GetByID(ctx, &file.TypeID)
	if err != nil {
		return nil, fail(err)
	}
	if fileType == nil {
		return nil, fail(errors.New(errors.ErrEmptyFileType))
	}
	if fileType.IsDeleted() {
		return nil, fail(errors.New(errors.ErrDeletedFileType))
	}

	contentType, ok := contenttype.Lookup(file.Extension)
	if !ok {
		return nil, fail(errors.New(errors.ErrIncorrectContentType))
	}

	path := Path(fileType, file)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fail(errors.New(errors.ErrNotFoundFile))
	}

	stream, err := os.Open(path)
	if err != nil {
		return nil, fail(errors.Wrap(errors.ErrNotFoundFile, err))
	}

	resolutionsTotal.WithLabelValues("success").Inc()
	servedBytesTotal.Add(float64(info.Size()))

	return &FileResponse{
		Success:     true,
		Stream:      stream,
		ContentType: contentType,
		Name:        file.Name,
		Size:        info.Size(),
	}, nil
}

func (s *fileService) GetList(ctx context.Context, entityID, typeID *int64) (*service.ListResponse, error) {
	logger.Info(i18n.GetInstance().T("entered_get_list_files"))

	files, err := s.files.GetListByEntity(ctx, entityID, typeID)
	if err != nil {
		logger.Errorf("%s: %v", i18n.GetInstance().T("error"), err)
		return nil, err
	}

	items := make([]service.ListItem, 0, len(files))
	for _, f := range files {
		items = append(items, service.ListItem{ID: f.ID, Name: f.Name})
	}
	return service.NewListResponse(items), nil
}

// Path 计算文件在磁盘上的位置，每次读取时重新计算
func Path(fileType *database.FileType, file *database.File) string {
	return filepath.Join(fileType.Path, fileType.Alias, strconv.FormatInt(file.EntityID, 10), file.Name)
}

// fail 记录失败与结果指标，原样返回错误
func fail(err error) error {
	logger.Errorf("%s: %v", i18n.GetInstance().T("error"), err)
	resolutionsTotal.WithLabelValues(resultLabel(err)).Inc()
	return err
}

// resultLabel 指标标签取自错误码对应的i18n键
func resultLabel(err error) string {
	appErr, ok := errors.GetAppError(err)
	if !ok {
		return "error"
	}
	switch appErr.Code {
	case errors.ErrEmptyFile:
		return "empty_file"
	case errors.ErrNotFoundFile:
		return "not_found_file"
	case errors.ErrDeletedFile:
		return "deleted_file"
	case errors.ErrEmptyFileType:
		return "empty_file_type"
	case errors.ErrDeletedFileType:
		return "deleted_file_type"
	case errors.ErrIncorrectContentType:
		return "incorrect_content_type"
	}
	return "error"
}
