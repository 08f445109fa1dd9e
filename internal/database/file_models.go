package database

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/insania/files/internal/translit"
)

// Audit 审计字段
// DateDeleted 为空表示记录有效，非空表示已软删除（记录删除时间）
type Audit struct {
	DateCreate     time.Time  `gorm:"column:date_create;not null;comment:创建时间" json:"date_create"`
	UsernameCreate string     `gorm:"column:username_create;not null;comment:创建人" json:"username_create"`
	DateUpdate     time.Time  `gorm:"column:date_update;not null;comment:更新时间" json:"date_update"`
	UsernameUpdate string     `gorm:"column:username_update;not null;comment:更新人" json:"username_update"`
	DateDeleted    *time.Time `gorm:"column:date_deleted;comment:删除时间" json:"date_deleted,omitempty"`
}

// newAudit 以当前时间创建审计字段
func newAudit(username string, dateDeleted *time.Time) Audit {
	now := time.Now().UTC()
	return Audit{
		DateCreate:     now,
		UsernameCreate: username,
		DateUpdate:     now,
		UsernameUpdate: username,
		DateDeleted:    dateDeleted,
	}
}

// IsDeleted 记录是否已软删除
func (a Audit) IsDeleted() bool {
	return a.DateDeleted != nil
}

// Touch 更新修改人和修改时间
func (a *Audit) Touch(username string) {
	a.DateUpdate = time.Now().UTC()
	a.UsernameUpdate = username
}

// FileType 文件类型（字典表）
// 描述一类文件及其在磁盘上的根目录
type FileType struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement;comment:主键" json:"id"`
	Name  string `gorm:"column:name;not null;comment:名称" json:"name"`
	Alias string `gorm:"column:alias;not null;uniqueIndex:ak_c_files_types_alias;comment:别名" json:"alias"`
	Path  string `gorm:"column:path;not null;comment:路径" json:"path"`
	Audit
}

// TableName 指定FileType模型对应的数据库表名
func (FileType) TableName() string {
	return "c_files_types"
}

// NewFileType 创建文件类型，别名由名称转写生成
// id 为0时由数据库分配
func NewFileType(id int64, username, name, path string, dateDeleted *time.Time) *FileType {
	return &FileType{
		ID:    id,
		Name:  name,
		Alias: translit.ToAlias(name),
		Path:  path,
		Audit: newAudit(username, dateDeleted),
	}
}

// SetName 修改名称并重新生成别名
func (t *FileType) SetName(name string) {
	t.Name = name
	t.Alias = translit.ToAlias(name)
}

// SetPath 修改根目录
func (t *FileType) SetPath(path string) {
	t.Path = path
}

// File 文件元数据
// Extension 始终由 Name 推导，不单独赋值
type File struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement;comment:主键" json:"id"`
	Name      string    `gorm:"column:name;not null;comment:文件名" json:"name"`
	Extension string    `gorm:"column:extension;not null;comment:扩展名" json:"extension"`
	TypeID    int64     `gorm:"column:type_id;not null;index:ix_r_files_type_id;comment:类型ID" json:"type_id"`
	Type      *FileType `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE" json:"-"`
	EntityID  int64     `gorm:"column:entity_id;not null;comment:所属实体ID" json:"entity_id"`
	IsSystem  bool      `gorm:"column:is_system;not null;comment:系统记录" json:"is_system"`
	Audit
}

// TableName 指定File模型对应的数据库表名
func (File) TableName() string {
	return "r_files"
}

// NewFile 创建文件元数据
// id 为0时由数据库分配
func NewFile(id int64, username string, isSystem bool, name string, fileType *FileType, entityID int64, dateDeleted *time.Time) *File {
	f := &File{
		ID:       id,
		TypeID:   fileType.ID,
		EntityID: entityID,
		IsSystem: isSystem,
		Audit:    newAudit(username, dateDeleted),
	}
	f.SetName(name)
	return f
}

// SetName 修改文件名并同步扩展名
func (f *File) SetName(name string) {
	f.Name = name
	f.Extension = ExtensionOf(name)
}

// SetType 修改文件类型
func (f *File) SetType(fileType *FileType) {
	f.TypeID = fileType.ID
}

// SetEntity 修改所属实体
func (f *File) SetEntity(entityID int64) {
	f.EntityID = entityID
}

// BeforeSave 写库前重新推导扩展名
func (f *File) BeforeSave(tx *gorm.DB) error {
	f.Extension = ExtensionOf(f.Name)
	return nil
}

// ExtensionOf 返回文件名最后一个"."之后的部分
// 没有"."时返回整个文件名
func ExtensionOf(name string) string {
	return name[strings.LastIndex(name, ".")+1:]
}
