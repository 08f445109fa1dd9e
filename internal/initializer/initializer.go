// Package initializer 负责启动时的结构初始化与数据初始化
//
// 结构模式: 执行建库与建schema脚本后直接返回
// 数据模式: 执行迁移，然后在两个独立事务中写入预置的文件类型与文件
package initializer

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/insania/files/config"
	"github.com/insania/files/internal/database"
	"github.com/insania/files/internal/errors"
	"github.com/insania/files/internal/i18n"
	"github.com/insania/files/internal/logger"
	"github.com/insania/files/internal/store"
)

// 预置数据的创建人
const username = "initializer"

// Initializer 初始化器
type Initializer struct {
	settings config.InitializationConfig
	filesCfg config.DatabaseConfig
	logsCfg  config.DatabaseConfig
	filesDB  *gorm.DB
	logsDB   *gorm.DB
	executor ScriptExecutor
}

// Option 初始化器选项
type Option func(*Initializer)

// WithScriptExecutor 替换结构模式下执行脚本的方式
func WithScriptExecutor(executor ScriptExecutor) Option {
	return func(i *Initializer) {
		i.executor = executor
	}
}

// New 创建初始化器
// 结构模式下不会访问 filesDB 与 logsDB，可以传 nil
func New(cfg *config.Config, filesDB, logsDB *gorm.DB, opts ...Option) *Initializer {
	i := &Initializer{
		settings: cfg.Initialization,
		filesCfg: cfg.Database.Files,
		logsCfg:  cfg.Database.Logs,
		filesDB:  filesDB,
		logsDB:   logsDB,
		executor: NewPgxExecutor(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Initialize 执行初始化
func (i *Initializer) Initialize(ctx context.Context) error {
	logger.Info(i18n.GetInstance().T("entered_initialize"))

	if err := i.initialize(ctx); err != nil {
		logger.Errorf("%s: %v", i18n.GetInstance().T("error"), err)
		return err
	}
	return nil
}

func (i *Initializer) initialize(ctx context.Context) error {
	if i.settings.InitStructure {
		return i.initializeStructure(ctx)
	}

	if err := database.Migrate(i.filesDB, i.filesCfg, database.TargetFiles); err != nil {
		return err
	}
	if err := database.Migrate(i.logsDB, i.logsCfg, database.TargetLogs); err != nil {
		return err
	}

	if i.settings.ScriptsPath == "" {
		return errors.New(errors.ErrEmptyScriptsPath)
	}

	if i.settings.Tables.FilesTypes {
		if err := i.seedFileTypes(ctx); err != nil {
			return err
		}
	}
	if i.settings.Tables.Files {
		if err := i.seedFiles(ctx); err != nil {
			return err
		}
	}
	return nil
}

// seedFileTypes 在一个事务中写入缺失的文件类型并执行 t_file_types 脚本
// 写入失败时整体回滚，脚本失败只记录日志
func (i *Initializer) seedFileTypes(ctx context.Context) error {
	return i.filesDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seed := range fileTypeSeeds {
			exists, err := existsByID(tx, &database.FileType{}, seed.id)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			fileType := database.NewFileType(seed.id, username, seed.name, i.settings.MockFilesPath, deletedAt(seed.deleted))
			if err := tx.Create(fileType).Error; err != nil {
				return err
			}
		}

		scripts, err := findScripts(i.settings.ScriptsPath, fileTypesScripts)
		if err != nil {
			return err
		}
		for _, script := range scripts {
			i.executeInTransaction(tx, script)
		}
		return nil
	})
}

// seedFiles 在一个事务中写入缺失的文件，然后执行 t_files 脚本
// 文件引用的类型不存在时返回 NotFoundFileType 并回滚
func (i *Initializer) seedFiles(ctx context.Context) error {
	return i.filesDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fileTypes := store.NewFileTypeStore(tx)

		for _, seed := range fileSeeds {
			exists, err := existsByID(tx, &database.File{}, seed.id)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			typeID := seed.typeID
			fileType, err := fileTypes.GetByID(ctx, &typeID)
			if err != nil {
				return err
			}
			if fileType == nil {
				return errors.New(errors.ErrNotFoundFileType).WithDetails(strconv.FormatInt(typeID, 10))
			}

			file := database.NewFile(seed.id, username, true, seed.name, fileType, seed.entityID, deletedAt(seed.deleted))
			if err := tx.Create(file).Error; err != nil {
				return err
			}
		}

		scripts, err := findScripts(i.settings.ScriptsPath, filesScripts)
		if err != nil {
			return err
		}
		for _, script := range scripts {
			i.executeInTransaction(tx, script)
		}
		return nil
	})
}

// existsByID 判断指定ID的记录是否存在（包含已删除记录）
func existsByID(tx *gorm.DB, model interface{}, id int64) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func deletedAt(deleted bool) *time.Time {
	if !deleted {
		return nil
	}
	now := time.Now().UTC()
	return &now
}
