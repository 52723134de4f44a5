package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ai-link-navigator/app/server/apperrors"
	"ai-link-navigator/app/server/models"
)

// GormStore 是生产环境的关系数据库后端（ Postgres 或 SQLite ）
type GormStore struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) LoadUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at ASC, username ASC").Find(&users).Error; err != nil {
		return nil, errors.Join(apperrors.ErrStorageFailure, err)
	}
	return users, nil
}

func (s *GormStore) SaveUsers(ctx context.Context, users []models.User) error {
	// 整表替换：先清空再写入，放在同一事务里
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
			return err
		}
		if len(users) > 0 {
			if err := tx.Create(&users).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Join(apperrors.ErrStorageFailure, err)
	}
	return nil
}

func (s *GormStore) LoadCatalog(ctx context.Context) (*models.Catalog, error) {
	var groups []models.Group
	if err := s.db.WithContext(ctx).
		Preload("Links", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("sort_order ASC, id ASC").
		Find(&groups).Error; err != nil {
		return nil, errors.Join(apperrors.ErrStorageFailure, err)
	}
	return &models.Catalog{Groups: groups}, nil
}

func (s *GormStore) SaveCatalog(ctx context.Context, catalog *models.Catalog) error {
	// 整体替换。删除时先 links 后 groups ，插入时先 groups 后 links ，
	// 以满足外键约束；全程单事务，避免中途失败留下半份目录
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Link{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Group{}).Error; err != nil {
			return err
		}
		for i := range catalog.Groups {
			// Create 会先插入分组再插入其关联的链接
			if err := tx.Create(&catalog.Groups[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Join(apperrors.ErrStorageFailure, err)
	}
	return nil
}
