package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "ru-RU", cfg.Language)
	assert.Equal(t, "sqlite", cfg.Database.Files.Driver)
	assert.Equal(t, "insania_files", cfg.Database.Files.Schema)
	assert.Equal(t, "insania_logs_api_files", cfg.Database.Logs.Schema)
	assert.Equal(t, "scripts", cfg.Initialization.ScriptsPath)
	assert.True(t, cfg.Initialization.Tables.FilesTypes)
	assert.True(t, cfg.Initialization.Tables.Files)
	assert.False(t, cfg.Initialization.InitStructure)
	assert.Equal(t, []string{"/health", "/health/ready", "/metrics"}, cfg.RequestLog.SkipPaths)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileYAMLAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
database:
  files:
    driver: postgres
    dsn: postgres://localhost/insania_files
initialization:
  init_structure: true
  tables:
    files: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("FILES_SERVER_PORT", "9191")
	t.Setenv("FILES_INITIALIZATION_SCRIPTS_PATH", "/opt/scripts")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Files.Driver)
	assert.Equal(t, "postgres://localhost/insania_files", cfg.Database.Files.DSN)
	assert.Equal(t, "/opt/scripts", cfg.Initialization.ScriptsPath)
	assert.True(t, cfg.Initialization.InitStructure)
	assert.True(t, cfg.Initialization.Tables.FilesTypes)
	assert.False(t, cfg.Initialization.Tables.Files)
}

func TestLoadFileInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown driver":    "database:\n  files:\n    driver: mysql\n",
		"tls without cert":  "server:\n  enable_tls: true\n",
		"unknown language":  "language: de-DE\n",
		"port out of range": "server:\n  port: 70000\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadUsesEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0644))
	t.Setenv("FILES_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadFileEnvOnlyKeys(t *testing.T) {
	t.Setenv("FILES_DATABASE_FILES_SERVER_DSN", "postgres://localhost/postgres")
	t.Setenv("FILES_DATABASE_FILES_EMPTY_DSN", "postgres://localhost/insania_files")
	t.Setenv("FILES_DATABASE_LOGS_SERVER_DSN", "postgres://logs/postgres")
	t.Setenv("FILES_DATABASE_LOGS_EMPTY_DSN", "postgres://logs/insania_logs_api_files")
	t.Setenv("FILES_SERVER_ENABLE_TLS", "true")
	t.Setenv("FILES_SERVER_TLS_CERT_FILE", "/etc/tls/cert.pem")
	t.Setenv("FILES_SERVER_TLS_KEY_FILE", "/etc/tls/key.pem")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/postgres", cfg.Database.Files.ServerDSN)
	assert.Equal(t, "postgres://localhost/insania_files", cfg.Database.Files.EmptyDSN)
	assert.Equal(t, "postgres://logs/postgres", cfg.Database.Logs.ServerDSN)
	assert.Equal(t, "postgres://logs/insania_logs_api_files", cfg.Database.Logs.EmptyDSN)
	assert.True(t, cfg.Server.EnableTLS)
	assert.Equal(t, "/etc/tls/cert.pem", cfg.Server.TLSCertFile)
	assert.Equal(t, "/etc/tls/key.pem", cfg.Server.TLSKeyFile)
}
