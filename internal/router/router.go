package router

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/insania/files/config"
	"github.com/insania/files/internal/database"
	"github.com/insania/files/internal/handler"
	"github.com/insania/files/internal/middleware"
	fileservice "github.com/insania/files/internal/service/file"
	filetypeservice "github.com/insania/files/internal/service/filetype"
	"github.com/insania/files/internal/store"
)

// Router 路由配置
type Router struct {
	engine *gin.Engine
}

// NewRouter 创建路由实例
// logsDB 为 nil 时不记录接口日志
func NewRouter(loggerMiddleware *middleware.LoggerMiddleware, filesDB, logsDB *gorm.DB, cfg *config.Config) *Router {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()

	// 初始化服务
	fileStore := store.NewFileStore(filesDB)
	fileTypeStore := store.NewFileTypeStore(filesDB)
	fileService := fileservice.NewFileService(fileStore, fileTypeStore)
	fileTypeService := filetypeservice.NewFileTypeService(fileTypeStore)

	// 初始化处理器
	fileHandler := handler.NewFileHandler(fileService)
	fileTypeHandler := handler.NewFileTypeHandler(fileTypeService)

	checks := map[string]handler.Pinger{
		"files": func(ctx context.Context) error { return database.Ping(ctx, filesDB) },
	}
	var requestLogs middleware.RequestLogWriter
	if logsDB != nil {
		checks["logs"] = func(ctx context.Context) error { return database.Ping(ctx, logsDB) }
		requestLogs = middleware.NewRequestLogWriter(logsDB)
	}
	healthHandler := handler.NewHealthHandler(checks)

	// 使用中间件
	engine.Use(gin.Recovery())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.RequestLogger(cfg.RequestLog, requestLogs))
	engine.Use(loggerMiddleware.AccessLog())

	// 配置CORS
	engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		MaxAge:        86400,
	}))

	// 健康检查与指标
	engine.GET("/health", healthHandler.Live)
	engine.GET("/health/ready", healthHandler.Ready)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	files := engine.Group("/files")
	{
		files.GET("/by_id", fileHandler.GetByID)
		files.GET("/list", fileHandler.GetList)
	}

	filesTypes := engine.Group("/files_types")
	{
		filesTypes.GET("/list", fileTypeHandler.GetList)
	}

	return &Router{
		engine: engine,
	}
}

// GetEngine 获取Gin引擎
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
