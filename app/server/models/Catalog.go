package models

// Catalog 是顶层持久化文档：完整的分组与链接树。
// 每次保存都是整体替换，不存在局部更新
type Catalog struct {
	Groups []Group `json:"groups"`
}
