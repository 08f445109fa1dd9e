// Package config 负责加载文件服务的配置
// 配置来源: YAML配置文件 + FILES_ 前缀的环境变量覆盖
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/insania/files/internal/logger"
)

// 默认配置文件路径，可通过环境变量 FILES_CONFIG 覆盖
const defaultConfigFile = "config.yaml"

// 环境变量前缀
const envPrefix = "FILES"

// Config 应用配置
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Log            logger.Config        `mapstructure:"log"`
	Database       DatabasesConfig      `mapstructure:"database"`
	Initialization InitializationConfig `mapstructure:"initialization"`
	RequestLog     RequestLogConfig     `mapstructure:"request_log"`
	// Language 错误消息语言: ru-RU 或 en-US
	Language string `mapstructure:"language" validate:"oneof=ru-RU en-US"`
}

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Port         int    `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout  int    `mapstructure:"read_timeout" validate:"min=0"`  // 秒
	WriteTimeout int    `mapstructure:"write_timeout" validate:"min=0"` // 秒
	EnableTLS    bool   `mapstructure:"enable_tls"`
	EnableHTTP2  bool   `mapstructure:"enable_http2"`
	TLSCertFile  string `mapstructure:"tls_cert_file" validate:"required_if=EnableTLS true"`
	TLSKeyFile   string `mapstructure:"tls_key_file" validate:"required_if=EnableTLS true"`
	Mode         string `mapstructure:"mode" validate:"oneof=debug release test"`
}

// DatabasesConfig 两个逻辑数据库: 文件库与接口日志库
type DatabasesConfig struct {
	Files DatabaseConfig `mapstructure:"files"`
	Logs  DatabaseConfig `mapstructure:"logs"`
}

// DatabaseConfig 单个数据库的连接配置
type DatabaseConfig struct {
	// Driver 数据库驱动: postgres 或 sqlite
	Driver string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	// DSN 业务连接串（postgres为连接URL，sqlite为文件路径）
	DSN string `mapstructure:"dsn" validate:"required"`
	// Schema postgres下的schema名，连接时写入search_path
	Schema string `mapstructure:"schema"`
	// ServerDSN 连接到服务器（不指定库）的连接串，仅用于建库脚本
	ServerDSN string `mapstructure:"server_dsn"`
	// EmptyDSN 连接到空库的连接串，仅用于建schema脚本
	EmptyDSN string `mapstructure:"empty_dsn"`

	MaxIdleConns    int `mapstructure:"max_idle_conns"`
	MaxOpenConns    int `mapstructure:"max_open_conns"`
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // 秒
}

// InitializationConfig 启动时的结构/数据初始化配置
type InitializationConfig struct {
	// InitStructure 为true时只执行建库建schema脚本，不灌数据
	InitStructure bool `mapstructure:"init_structure"`
	// ScriptsPath SQL脚本所在目录
	ScriptsPath string `mapstructure:"scripts_path"`
	// MockFilesPath 预置文件类型的根目录
	MockFilesPath string                        `mapstructure:"mock_files_path"`
	Tables        InitializationTablesConfig    `mapstructure:"tables"`
	Databases     InitializationDatabasesConfig `mapstructure:"databases"`
}

// InitializationTablesConfig 需要灌数据的表
type InitializationTablesConfig struct {
	FilesTypes bool `mapstructure:"files_types"`
	Files      bool `mapstructure:"files"`
}

// InitializationDatabasesConfig 结构模式下需要创建的数据库
type InitializationDatabasesConfig struct {
	Files        bool `mapstructure:"files"`
	LogsApiFiles bool `mapstructure:"logs_api_files"`
}

// RequestLogConfig 接口日志落库配置
type RequestLogConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AsyncLogging bool     `mapstructure:"async_logging"`
	MaxBodySize  int      `mapstructure:"max_body_size" validate:"min=0"`
	SkipPaths    []string `mapstructure:"skip_paths"`
}

// Load 从默认位置加载配置
func Load() (*Config, error) {
	path := os.Getenv("FILES_CONFIG")
	if path == "" {
		path = defaultConfigFile
	}
	return LoadFile(path)
}

// LoadFile 从指定文件加载配置
// 文件不存在时只使用默认值和环境变量
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// setDefaults 设置默认配置
func setDefaults(v *viper.Viper) {
	v.SetDefault("language", "ru-RU")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.enable_tls", false)
	v.SetDefault("server.enable_http2", false)
	v.SetDefault("server.tls_cert_file", "")
	v.SetDefault("server.tls_key_file", "")
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.file_path", "logs/files.log")

	v.SetDefault("database.files.driver", "sqlite")
	v.SetDefault("database.files.dsn", "data/insania_files.db")
	v.SetDefault("database.files.server_dsn", "")
	v.SetDefault("database.files.empty_dsn", "")
	v.SetDefault("database.files.schema", "insania_files")
	v.SetDefault("database.files.max_idle_conns", 5)
	v.SetDefault("database.files.max_open_conns", 20)
	v.SetDefault("database.files.conn_max_lifetime", 3600)

	v.SetDefault("database.logs.driver", "sqlite")
	v.SetDefault("database.logs.dsn", "data/insania_logs_api_files.db")
	v.SetDefault("database.logs.server_dsn", "")
	v.SetDefault("database.logs.empty_dsn", "")
	v.SetDefault("database.logs.schema", "insania_logs_api_files")
	v.SetDefault("database.logs.max_idle_conns", 2)
	v.SetDefault("database.logs.max_open_conns", 10)
	v.SetDefault("database.logs.conn_max_lifetime", 3600)

	v.SetDefault("initialization.init_structure", false)
	v.SetDefault("initialization.scripts_path", "scripts")
	v.SetDefault("initialization.mock_files_path", "mockfiles")
	v.SetDefault("initialization.tables.files_types", true)
	v.SetDefault("initialization.tables.files", true)
	v.SetDefault("initialization.databases.files", true)
	v.SetDefault("initialization.databases.logs_api_files", true)

	v.SetDefault("request_log.enabled", true)
	v.SetDefault("request_log.async_logging", true)
	v.SetDefault("request_log.max_body_size", 64*1024)
	v.SetDefault("request_log.skip_paths", []string{"/health", "/health/ready", "/metrics"})
}
