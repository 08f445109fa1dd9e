package initializer

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"

	"github.com/insania/files/internal/errors"
	"github.com/insania/files/internal/i18n"
	"github.com/insania/files/internal/logger"
)

// fileTypesScripts 文件类型事务内执行的脚本
var fileTypesScripts = regexp.MustCompile(`^t_file_types_(\d+)\.sql$`)

// filesScripts 文件事务内、写入全部文件之后执行的脚本
var filesScripts = regexp.MustCompile(`^t_files_(\d+)\.sql$`)

// 事务内脚本使用的保存点
const scriptSavePoint = "initializer_script"

// ScriptExecutor 在指定连接串上执行SQL脚本
type ScriptExecutor interface {
	Execute(ctx context.Context, connString, sql string) error
}

// pgxExecutor 每个脚本使用独立的pgx连接
type pgxExecutor struct{}

// NewPgxExecutor 创建基于pgx的脚本执行器
func NewPgxExecutor() ScriptExecutor {
	return pgxExecutor{}
}

func (pgxExecutor) Execute(ctx context.Context, connString, sql string) error {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// 无参数时pgx使用简单协议，一个脚本可以包含多条语句
	_, err = conn.Exec(ctx, sql)
	return err
}

// findScripts 返回目录下匹配模式的脚本，按文件名中的序号排序
// 模式的第一个分组必须是序号
func findScripts(dir string, pattern *regexp.Regexp) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type script struct {
		path  string
		order int64
	}
	var scripts []script
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		order, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		scripts = append(scripts, script{path: filepath.Join(dir, entry.Name()), order: order})
	}

	sort.SliceStable(scripts, func(a, b int) bool {
		return scripts[a].order < scripts[b].order
	})

	paths := make([]string, 0, len(scripts))
	for _, s := range scripts {
		paths = append(paths, s.path)
	}
	return paths, nil
}

// executeWithConnection 在独立连接上执行脚本，失败只记录日志
func (i *Initializer) executeWithConnection(ctx context.Context, path, connString string) {
	logger.Infof("%s %s", i18n.GetInstance().T("execute_script"), path)

	sql, err := os.ReadFile(path)
	if err != nil {
		logNotExecuted(path, err)
		return
	}
	if err := i.executor.Execute(ctx, connString, string(sql)); err != nil {
		logNotExecuted(path, err)
		return
	}

	logger.Infof("%s %s", i18n.GetInstance().T("executed_script"), path)
}

// executeInTransaction 在事务内执行脚本，失败回滚到保存点并只记录日志
func (i *Initializer) executeInTransaction(tx *gorm.DB, path string) {
	logger.Infof("%s %s", i18n.GetInstance().T("execute_script"), path)

	sql, err := os.ReadFile(path)
	if err != nil {
		logNotExecuted(path, err)
		return
	}

	if err := tx.SavePoint(scriptSavePoint).Error; err != nil {
		logNotExecuted(path, err)
		return
	}
	if err := tx.Exec(string(sql)).Error; err != nil {
		if rbErr := tx.RollbackTo(scriptSavePoint).Error; rbErr != nil {
			logger.WithError(rbErr).Warn("rollback to savepoint failed")
		}
		logNotExecuted(path, err)
		return
	}

	logger.Infof("%s %s", i18n.GetInstance().T("executed_script"), path)
}

func logNotExecuted(path string, err error) {
	logger.WithField("script", path).Errorf("%s: %v", errors.New(errors.ErrNotExecutedScript).Error(), err)
}
