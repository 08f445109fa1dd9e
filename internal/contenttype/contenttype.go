// Package contenttype 维护文件扩展名到MIME类型的只读映射
package contenttype

// values 扩展名 -> MIME类型，进程内只读
var values = map[string]string{
	"gif":  "image/gif",
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"tiff": "image/tiff",
	"webp": "image/webp",
}

// Lookup 按扩展名查找MIME类型
// 区分大小写，扩展名不带点
func Lookup(extension string) (string, bool) {
	contentType, ok := values[extension]
	return contentType, ok
}
