package models

type Link struct {
	// 链接 ID ，在整个目录里唯一
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	Title       string `gorm:"column:title" json:"title"`
	URL         string `gorm:"column:url" json:"url"`
	Description string `gorm:"column:description" json:"description"`

	// 展示顺序，升序排列
	Order int `gorm:"column:sort_order" json:"order"`

	// 所属分组
	GroupID string `gorm:"column:group_id;index" json:"-"`
}
