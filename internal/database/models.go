// Package database 定义了数据库相关的模型和连接
// - file_models.go: 文件相关模型（FileType, File）
// - log_models.go: 接口日志模型（LogAPIFiles）
// - database.go: 连接初始化
// - migrations.go: 表结构迁移
package database
