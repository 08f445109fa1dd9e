// Package service 定义业务层共享的响应结构
// 具体服务位于 file 与 filetype 子包
package service

// ListItem 列表项: 标识与名称
type ListItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListResponse 列表响应
type ListResponse struct {
	Success bool       `json:"success"`
	Items   []ListItem `json:"items"`
}

// NewListResponse 创建成功的列表响应，items 不为 nil
func NewListResponse(items []ListItem) *ListResponse {
	if items == nil {
		items = []ListItem{}
	}
	return &ListResponse{Success: true, Items: items}
}
