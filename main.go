package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"gorm.io/gorm"

	"github.com/insania/files/config"
	"github.com/insania/files/internal/database"
	"github.com/insania/files/internal/i18n"
	"github.com/insania/files/internal/initializer"
	"github.com/insania/files/internal/logger"
	"github.com/insania/files/internal/middleware"
	"github.com/insania/files/internal/router"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	i18n.GetInstance().SetDefaultLanguage(cfg.Language)

	// 结构模式只创建数据库与schema，此时业务库可能还不存在
	if cfg.Initialization.InitStructure {
		if err := initializer.New(cfg, nil, nil).Initialize(context.Background()); err != nil {
			logger.Fatalf("Failed to initialize structure: %v", err)
		}
	}

	// 初始化数据库
	filesDB, err := database.Open(cfg.Database.Files)
	if err != nil {
		logger.Fatalf("Failed to open files database: %v", err)
	}
	logsDB, err := database.Open(cfg.Database.Logs)
	if err != nil {
		logger.Fatalf("Failed to open logs database: %v", err)
	}
	defer closeDB(filesDB)
	defer closeDB(logsDB)

	if !cfg.Initialization.InitStructure {
		if err := initializer.New(cfg, filesDB, logsDB).Initialize(context.Background()); err != nil {
			logger.Fatalf("Failed to initialize data: %v", err)
		}
	}

	// 初始化路由
	r := router.NewRouter(middleware.NewLoggerMiddleware(), filesDB, logsDB, cfg)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      r.GetEngine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	if cfg.Server.EnableTLS {
		srv.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			NextProtos: []string{"h2", "http/1.1"},
		}
		// 如果启用HTTP/2，配置HTTP/2支持
		if cfg.Server.EnableHTTP2 {
			if err := http2.ConfigureServer(srv, &http2.Server{}); err != nil {
				logger.Fatalf("配置HTTP/2失败: %v", err)
			}
		}
	}

	go func() {
		logger.Infof("服务器启动在端口 %d (TLS: %v, HTTP/2: %v)", cfg.Server.Port, cfg.Server.EnableTLS, cfg.Server.EnableHTTP2)

		var err error
		if cfg.Server.EnableTLS {
			err = srv.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器...")

	// 优雅关闭服务器
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("服务器强制关闭: %v", err)
	}

	logger.Info("服务器已退出")
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		logger.Errorf("Failed to close database: %v", err)
	}
}
