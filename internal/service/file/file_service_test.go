package file

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insania/files/config"
	"github.com/insania/files/internal/database"
	"github.com/insania/files/internal/errors"
	"github.com/insania/files/internal/store"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// setupService 创建内存数据库和临时文件目录
// 文件1存在于磁盘，文件2只有元数据
func setupService(t *testing.T) (FileService, string) {
	root := t.TempDir()

	cfg := config.DatabaseConfig{Driver: database.DriverSQLite, DSN: ":memory:"}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db, cfg, database.TargetFiles))

	deleted := time.Now().UTC()
	races := database.NewFileType(1, "test", "Расы", root, nil)
	removed := database.NewFileType(3, "test", "Удалённый", root, &deleted)
	require.NoError(t, db.Create(races).Error)
	require.NoError(t, db.Create(removed).Error)

	files := []*database.File{
		database.NewFile(1, "test", true, "1.png", races, 1, nil),
		database.NewFile(2, "test", true, "2.png", races, 1, nil),
		database.NewFile(3, "test", true, "incorrect_content_type_0.png1", races, 1, nil),
		database.NewFile(4, "test", true, "deleted_type_0.png", removed, 0, nil),
		database.NewFile(5, "test", true, "deleted_0.png", removed, 0, &deleted),
		database.NewFile(6, "test", true, "dir.png", races, 1, nil),
		database.NewFile(7, "test", true, "other_entity.png", races, 2, nil),
	}
	for _, f := range files {
		require.NoError(t, db.Create(f).Error)
	}

	entityDir := filepath.Join(root, "rasy", "1")
	require.NoError(t, os.MkdirAll(filepath.Join(entityDir, "dir.png"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(entityDir, "1.png"), pngBytes, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(entityDir, "incorrect_content_type_0.png1"), pngBytes, 0644))

	return NewFileService(store.NewFileStore(db), store.NewFileTypeStore(db)), root
}

func int64Ptr(v int64) *int64 { return &v }

func TestGetByID(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	t.Run("返回文件内容", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, int64Ptr(1))
		require.NoError(t, err)
		require.NotNil(t, resp)
		defer resp.Stream.Close()

		assert.True(t, resp.Success)
		assert.Equal(t, "image/png", resp.ContentType)
		assert.Equal(t, int64(len(pngBytes)), resp.Size)

		data, err := io.ReadAll(resp.Stream)
		require.NoError(t, err)
		assert.Equal(t, pngBytes, data)
	})

	cases := []struct {
		name string
		id   *int64
		want error
	}{
		{"空ID", nil, errors.ErrEmptyFileError},
		{"不存在的记录", int64Ptr(-1), errors.ErrNotFoundFileError},
		{"磁盘上不存在", int64Ptr(2), errors.ErrNotFoundFileError},
		{"扩展名不受支持", int64Ptr(3), errors.ErrIncorrectContentTypeError},
		{"类型已删除", int64Ptr(4), errors.ErrDeletedFileTypeError},
		{"文件已删除", int64Ptr(5), errors.ErrDeletedFileError},
		{"路径是目录", int64Ptr(6), errors.ErrNotFoundFileError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.GetByID(ctx, tc.id)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("错误消息为俄语", func(t *testing.T) {
		_, err := svc.GetByID(ctx, int64Ptr(5))
		assert.EqualError(t, err, "Файл удалён в зоне файлов")
	})
}

func TestGetList(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	t.Run("实体与类型都匹配", func(t *testing.T) {
		resp, err := svc.GetList(ctx, int64Ptr(1), int64Ptr(1))
		require.NoError(t, err)
		assert.True(t, resp.Success)

		names := make([]string, 0, len(resp.Items))
		for _, item := range resp.Items {
			names = append(names, item.Name)
		}
		assert.Equal(t, []string{"1.png", "2.png", "incorrect_content_type_0.png1", "dir.png"}, names)
	})

	empty := []struct {
		name             string
		entityID, typeID int64
	}{
		{"实体不存在", -1, 1},
		{"实体无文件", 3, 1},
		{"类型不存在", 1, -1},
		{"类型下无文件", 1, 3},
	}
	for _, tc := range empty {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.GetList(ctx, int64Ptr(tc.entityID), int64Ptr(tc.typeID))
			require.NoError(t, err)
			assert.True(t, resp.Success)
			assert.NotNil(t, resp.Items)
			assert.Empty(t, resp.Items)
		})
	}

	t.Run("已删除文件不在列表中", func(t *testing.T) {
		resp, err := svc.GetList(ctx, int64Ptr(0), int64Ptr(3))
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, int64(4), resp.Items[0].ID)
	})

	t.Run("缺少过滤条件", func(t *testing.T) {
		_, err := svc.GetList(ctx, nil, nil)
		assert.ErrorIs(t, err, errors.ErrEmptyEntityError)

		_, err = svc.GetList(ctx, int64Ptr(-1), nil)
		assert.ErrorIs(t, err, errors.ErrEmptyFileTypeError)
	})
}

// failingFileStore 模拟存储层故障
type failingFileStore struct {
	store.FileStore
	err error
}

func (s failingFileStore) GetByID(context.Context, *int64) (*database.File, error) {
	return nil, s.err
}

func TestGetByIDStorageError(t *testing.T) {
	storageErr := errors.Wrap(errors.ErrGeneric, stderrors.New("connection refused"))
	svc := NewFileService(failingFileStore{err: storageErr}, nil)

	_, err := svc.GetByID(context.Background(), int64Ptr(1))
	assert.ErrorIs(t, err, storageErr)
	assert.True(t, errors.HasCode(err, errors.ErrGeneric))
}

func TestPath(t *testing.T) {
	ft := database.NewFileType(1, "test", "Нации", "/srv/files", nil)
	f := database.NewFile(10, "test", true, "flag.webp", ft, 42, nil)
	assert.Equal(t, filepath.Join("/srv/files", "natsii", "42", "flag.webp"), Path(ft, f))
}
