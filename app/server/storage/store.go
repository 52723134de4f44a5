package storage

import (
	"context"

	"ai-link-navigator/app/server/models"
)

// Store 是持久化适配层的统一契约：用户列表和目录文档都按整份读写，
// 不同后端（关系数据库、本地 JSON 文件）在此之下互换。
// 实现必须保持分组与链接的声明顺序
type Store interface {
	LoadUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error

	LoadCatalog(ctx context.Context) (*models.Catalog, error)
	SaveCatalog(ctx context.Context, catalog *models.Catalog) error
}
