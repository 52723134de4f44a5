package models

type Group struct {
	// 分组 ID ，由前端生成的字符串，全局唯一
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	Title       string `gorm:"column:title" json:"title"`
	Description string `gorm:"column:description" json:"description"`

	// 展示顺序，升序排列（ order 是 SQL 保留字，列名避开）
	Order int `gorm:"column:sort_order" json:"order"`

	// 分组独占其下的链接，删除分组时级联删除
	Links []Link `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"links"`
}
