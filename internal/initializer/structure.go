package initializer

import (
	"context"
	"fmt"
	"regexp"

	"github.com/insania/files/config"
	"github.com/insania/files/internal/errors"
	"github.com/insania/files/internal/i18n"
	"github.com/insania/files/internal/logger"
)

// 结构模式下的数据库名，对应脚本名中的部分
const (
	structureFiles        = "files"
	structureLogsApiFiles = "logs_api_files"
)

// initializeStructure 执行建库与建schema脚本
func (i *Initializer) initializeStructure(ctx context.Context) error {
	logger.Info(i18n.GetInstance().T("initialization_structure"))

	if i.settings.ScriptsPath == "" {
		return errors.New(errors.ErrEmptyScriptsPath)
	}

	if i.settings.Databases.Files {
		if err := i.createDatabase(ctx, structureFiles, i.filesCfg); err != nil {
			return err
		}
	}
	if i.settings.Databases.LogsApiFiles {
		if err := i.createDatabase(ctx, structureLogsApiFiles, i.logsCfg); err != nil {
			return err
		}
	}
	return nil
}

// createDatabase 先在服务器连接上执行 databases_<name>_N.sql，
// 再在空库连接上执行 schemes_<name>_N.sql
func (i *Initializer) createDatabase(ctx context.Context, name string, cfg config.DatabaseConfig) error {
	if cfg.ServerDSN == "" || cfg.EmptyDSN == "" {
		return errors.New(errors.ErrEmptyConnectionString).WithDetails(name)
	}

	steps := []struct {
		pattern    *regexp.Regexp
		connString string
	}{
		{regexp.MustCompile(fmt.Sprintf(`^databases_%s_(\d+)\.sql$`, name)), cfg.ServerDSN},
		{regexp.MustCompile(fmt.Sprintf(`^schemes_%s_(\d+)\.sql$`, name)), cfg.EmptyDSN},
	}
	for _, step := range steps {
		scripts, err := findScripts(i.settings.ScriptsPath, step.pattern)
		if err != nil {
			return err
		}
		for _, script := range scripts {
			i.executeWithConnection(ctx, script, step.connString)
		}
	}
	return nil
}
