package database

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/insania/files/config"
	"github.com/insania/files/internal/logger"
)

//go:embed migrations/files/*.sql migrations/logs/*.sql
var migrationsFS embed.FS

// Target 迁移目标库
type Target string

const (
	// TargetFiles 文件库: c_files_types, r_files
	TargetFiles Target = "files"
	// TargetLogs 接口日志库: r_logs_api_files
	TargetLogs Target = "logs"
)

// models 每个目标库在sqlite下自动迁移的模型
func (t Target) models() []interface{} {
	switch t {
	case TargetFiles:
		return []interface{}{&FileType{}, &File{}}
	case TargetLogs:
		return []interface{}{&LogAPIFiles{}}
	}
	return nil
}

// migrationsTable 每个库单独的版本表，两个库可能位于同一个postgres数据库
func (t Target) migrationsTable() string {
	return "schema_migrations_" + string(t)
}

// Migrate 应用目标库的待执行迁移
// postgres使用golang-migrate执行内嵌SQL，sqlite使用gorm AutoMigrate
func Migrate(db *gorm.DB, cfg config.DatabaseConfig, target Target) error {
	logger.Infof("开始执行数据库迁移: %s", target)

	switch cfg.Driver {
	case DriverPostgres:
		if err := migrateUp(cfg.DSN, target); err != nil {
			return err
		}
	case DriverSQLite:
		if err := db.AutoMigrate(target.models()...); err != nil {
			return fmt.Errorf("auto migrate %s: %w", target, err)
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	logger.Infof("数据库迁移完成: %s", target)
	return nil
}

// migrateUp 使用golang-migrate执行内嵌的SQL迁移
func migrateUp(dsn string, target Target) error {
	source, err := iofs.New(migrationsFS, "migrations/"+string(target))
	if err != nil {
		return fmt.Errorf("create migrations source: %w", err)
	}

	dbURL, err := migrateURL(dsn, target.migrationsTable())
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.WithField("version", version).WithField("dirty", dirty).Infof("迁移已应用: %s", target)
	return nil
}

// migrateURL 将postgres连接URL转换为golang-migrate的pgx5格式
// 迁移SQL自带schema前缀，因此去掉search_path
func migrateURL(dsn, table string) (string, error) {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return "", fmt.Errorf("migrations require a postgres URL dsn")
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid postgres dsn: %w", err)
	}
	u.Scheme = "pgx5"
	q := u.Query()
	q.Del("search_path")
	q.Set("x-migrations-table", table)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
