package config

import "strings"

type Config struct {
	System struct {
		Mode      string `env:"MODE, default=dev"`           // 以 p 开头视为生产环境
		Listen    string `env:"LISTEN, default=:1323"`       // 监听地址
		StaticDir string `env:"STATIC_DIR, default=./static"` // 前端页面目录
	}
	Storage struct {
		Backend string `env:"STORAGE, default=db"`       // db 或 file
		DBType  string `env:"DB_TYPE, default=postgres"` // postgres 或 sqlite
		DBConn  string `env:"DB_CONN"`                   // 数据库连接字符串（ STORAGE=db 时必填）
		DataDir string `env:"DATA_DIR, default=./data"`  // 平面文件目录，db 后端也用它做首次导入
	}
	Session struct {
		Backend   string `env:"SESSION, default=redis"` // redis 或 memory
		RedisConn string `env:"REDIS_CONN"`             // Redis 连接字符串（ SESSION=redis 时必填）
	}
}

func (c *Config) IsProd() bool {
	return strings.HasPrefix(strings.ToLower(c.System.Mode), "p")
}
