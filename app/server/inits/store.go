package inits

import (
	"context"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ai-link-navigator/app/server/config"
	"ai-link-navigator/app/server/models"
	"ai-link-navigator/app/server/storage"
)

func Store(cfg *config.Config, l *zap.Logger) (storage.Store, error) {
	var st storage.Store

	switch cfg.Storage.Backend {
	case "file":
		st = storage.NewFile(cfg.Storage.DataDir)

	case "db":
		db, err := openDB(cfg)
		if err != nil {
			return nil, err
		}

		// 迁移
		if err = db.AutoMigrate(
			&models.User{},
			&models.Group{},
			&models.Link{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		st = storage.NewGorm(db)

		// 数据库为空时尝试从 DATA_DIR 下的 JSON 文档做一次性导入
		if err = importFromFiles(st, cfg.Storage.DataDir, l); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	// 初始化启动数据
	if err := initData(st, l); err != nil {
		return nil, fmt.Errorf("failed to init data into store: %w", err)
	}

	return st, nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Storage.DBType {
	case "postgres":
		dialector = postgres.Open(cfg.Storage.DBConn)
	case "sqlite":
		dialector = sqlite.Open(cfg.Storage.DBConn)
	default:
		return nil, fmt.Errorf("unknown db type: %s", cfg.Storage.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// importFromFiles 把旧的平面文件数据搬进空数据库（只在首次启动时发生）
func importFromFiles(st storage.Store, dataDir string, l *zap.Logger) error {
	ctx := context.Background()
	src := storage.NewFile(dataDir)

	if users, err := st.LoadUsers(ctx); err != nil {
		return err
	} else if len(users) == 0 {
		if fileUsers, err := src.LoadUsers(ctx); err != nil {
			l.Warn("failed to read users.json for import", zap.Error(err))
		} else if len(fileUsers) > 0 {
			if err = st.SaveUsers(ctx, fileUsers); err != nil {
				return err
			}
			l.Info("imported users from file", zap.Int("count", len(fileUsers)))
		}
	}

	if cat, err := st.LoadCatalog(ctx); err != nil {
		return err
	} else if len(cat.Groups) == 0 {
		if fileCat, err := src.LoadCatalog(ctx); err != nil {
			l.Warn("failed to read data.json for import", zap.Error(err))
		} else if len(fileCat.Groups) > 0 {
			if err = st.SaveCatalog(ctx, fileCat); err != nil {
				return err
			}
			l.Info("imported catalog from file", zap.Int("groups", len(fileCat.Groups)))
		}
	}

	return nil
}

// initData 没有任何用户时写入两个初始账号
func initData(st storage.Store, l *zap.Logger) error {
	ctx := context.Background()

	users, err := st.LoadUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	seeds := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "A123456", models.RoleAdmin},
		{"user", "U123456", models.RoleUser},
	}

	for _, seed := range seeds {
		hash, err := argon2id.CreateHash(seed.password, argon2id.DefaultParams)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		users = append(users, models.User{
			Username:     seed.username,
			PasswordHash: hash,
			Role:         seed.role,
			CreatedAt:    time.Now().UTC(),
		})
	}

	if err := st.SaveUsers(ctx, users); err != nil {
		return err
	}

	l.Info("default users created")
	return nil
}
