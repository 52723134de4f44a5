package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	// 用户名，全局唯一，创建后不可更改
	Username string `gorm:"column:username;primaryKey" json:"username"`

	// 密码散列，使用 argon2id 储存；只在持久化文档里出现，接口响应必须剥离
	PasswordHash string `gorm:"column:password_hash" json:"password_hash,omitempty"`

	Role      string    `gorm:"column:role" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// IsAdmin 角色判断
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole 检查角色是否为有效枚举值
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
