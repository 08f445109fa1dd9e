package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/insania/files/config"
	"github.com/insania/files/internal/database"
	"github.com/insania/files/internal/middleware"
	"github.com/insania/files/internal/service"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// setupRouter 创建带测试数据的路由
func setupRouter(t *testing.T) (*Router, *gorm.DB) {
	root := t.TempDir()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabasesConfig{
			Files: config.DatabaseConfig{Driver: database.DriverSQLite, DSN: ":memory:"},
			Logs:  config.DatabaseConfig{Driver: database.DriverSQLite, DSN: ":memory:"},
		},
		RequestLog: config.RequestLogConfig{
			Enabled:     true,
			MaxBodySize: 1024,
			SkipPaths:   []string{"/health", "/metrics"},
		},
	}

	filesDB, err := database.Open(cfg.Database.Files)
	require.NoError(t, err)
	logsDB, err := database.Open(cfg.Database.Logs)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(filesDB)
		_ = database.Close(logsDB)
	})
	require.NoError(t, database.Migrate(filesDB, cfg.Database.Files, database.TargetFiles))
	require.NoError(t, database.Migrate(logsDB, cfg.Database.Logs, database.TargetLogs))

	deleted := time.Now().UTC()
	races := database.NewFileType(1, "test", "Расы", root, nil)
	require.NoError(t, filesDB.Create(races).Error)
	require.NoError(t, filesDB.Create(database.NewFileType(3, "test", "Удалённый", root, &deleted)).Error)
	require.NoError(t, filesDB.Create(database.NewFile(1, "test", true, "race_0.png", races, 1, nil)).Error)
	require.NoError(t, filesDB.Create(database.NewFile(2, "test", true, "race_1.png", races, 1, nil)).Error)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "rasy", "1"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "rasy", "1", "race_0.png"), pngBytes, 0644))

	return NewRouter(middleware.NewLoggerMiddleware(), filesDB, logsDB, cfg), logsDB
}

func get(r *Router, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.GetEngine().ServeHTTP(w, req)
	return w
}

func TestGetFileByID(t *testing.T) {
	r, _ := setupRouter(t)

	t.Run("返回文件内容", func(t *testing.T) {
		w := get(r, "/files/by_id?id=1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, pngBytes, w.Body.Bytes())
	})

	cases := []struct {
		name    string
		target  string
		message string
	}{
		{"缺少ID", "/files/by_id", "Пустой файл в зоне файлов"},
		{"ID不是整数", "/files/by_id?id=abc", "Пустой файл в зоне файлов"},
		{"记录不存在", "/files/by_id?id=-1", "Не найден файл в зоне файлов"},
		{"磁盘上不存在", "/files/by_id?id=2", "Не найден файл в зоне файлов"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(r, tc.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestGetFilesList(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/files/list?entity_id=1&type_id=1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp service.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []service.ListItem{{ID: 1, Name: "race_0.png"}, {ID: 2, Name: "race_1.png"}}, resp.Items)

	w = get(r, "/files/list?entity_id=2&type_id=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"items":[]}`, w.Body.String())

	w = get(r, "/files/list")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Пустая сущность в зоне файлов"}`, w.Body.String())

	w = get(r, "/files/list?entity_id=1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Пустой тип файла в зоне файлов"}`, w.Body.String())
}

func TestGetFilesTypesList(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/files_types/list")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"items":[{"id":1,"name":"Расы"}]}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/health/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"files":"ok","logs":"ok"}}`, w.Body.String())

	w = get(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "files_http_requests_total")
}

func TestRequestLogPersisted(t *testing.T) {
	r, logsDB := setupRouter(t)

	get(r, "/files/list?entity_id=1&type_id=1")
	get(r, "/files/by_id?id=-1")
	get(r, "/files/by_id?id=1")
	get(r, "/health")

	var entries []database.LogAPIFiles
	require.NoError(t, logsDB.Order("id").Find(&entries).Error)
	require.Len(t, entries, 3)

	assert.Equal(t, "/files/list", entries[0].Method)
	assert.Equal(t, http.MethodGet, entries[0].Type)
	assert.True(t, entries[0].Success)
	require.NotNil(t, entries[0].StatusCode)
	assert.Equal(t, http.StatusOK, *entries[0].StatusCode)
	assert.Contains(t, string(entries[0].DataIn), `"entity_id":["1"]`)
	assert.JSONEq(t, `{"success":true,"items":[{"id":1,"name":"race_0.png"},{"id":2,"name":"race_1.png"}]}`, string(entries[0].DataOut))
	assert.NotNil(t, entries[0].DateEnd)

	assert.False(t, entries[1].Success)
	assert.Equal(t, http.StatusBadRequest, *entries[1].StatusCode)

	assert.True(t, entries[2].Success)
	assert.JSONEq(t, `{"content_type":"image/png","size":8}`, string(entries[2].DataOut))
}
