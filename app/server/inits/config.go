package inits

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"ai-link-navigator/app/server/config"
)

func Config() (*config.Config, error) {
	// .env 存在就先读进环境，没有也无所谓
	_ = godotenv.Load()

	var cfg config.Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	// 按选定的后端检查必填项
	if cfg.Storage.Backend == "db" && cfg.Storage.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	}
	if cfg.Session.Backend == "redis" && cfg.Session.RedisConn == "" {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	}

	return &cfg, nil
}
