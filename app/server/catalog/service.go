package catalog

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"ai-link-navigator/app/server/models"
	"ai-link-navigator/app/server/storage"
)

// Service 负责目录树的读取与整体替换。
// 没有局部更新、合并或差量操作，每次保存都是全量覆盖
type Service struct {
	store storage.Store
	l     *zap.Logger
}

func New(store storage.Store, l *zap.Logger) *Service {
	return &Service{store: store, l: l}
}

// Get 返回完整目录，分组与链接都按 order 升序。
// 读失败降级为空目录，只记录日志
func (s *Service) Get(ctx context.Context) *models.Catalog {
	catalog, err := s.store.LoadCatalog(ctx)
	if err != nil {
		s.l.Error("failed to load catalog", zap.Error(err))
		return &models.Catalog{Groups: []models.Group{}}
	}

	sortCatalog(catalog)
	return catalog
}

// Replace 原子地整体替换目录
func (s *Service) Replace(ctx context.Context, catalog *models.Catalog) error {
	return s.store.SaveCatalog(ctx, catalog)
}

func sortCatalog(catalog *models.Catalog) {
	if catalog.Groups == nil {
		catalog.Groups = []models.Group{}
	}
	sort.SliceStable(catalog.Groups, func(i, j int) bool {
		return catalog.Groups[i].Order < catalog.Groups[j].Order
	})
	for g := range catalog.Groups {
		// 空分组序列化成 [] 而不是 null
		if catalog.Groups[g].Links == nil {
			catalog.Groups[g].Links = []models.Link{}
		}
		links := catalog.Groups[g].Links
		sort.SliceStable(links, func(i, j int) bool {
			return links[i].Order < links[j].Order
		})
	}
}
