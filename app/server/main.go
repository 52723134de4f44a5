package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"ai-link-navigator/app/server/catalog"
	"ai-link-navigator/app/server/handlers"
	"ai-link-navigator/app/server/inits"
	"ai-link-navigator/app/server/session"
	"ai-link-navigator/app/server/users"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(cfg.IsProd())
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化持久层（含迁移和初始数据）
	st, err := inits.Store(cfg, l)
	if err != nil {
		l.Fatal("error initializing store", zap.Error(err))
	}

	// 初始化会话后端
	var sessions session.Manager
	switch cfg.Session.Backend {
	case "memory":
		sessions = session.NewMemory()
	case "redis":
		rdb, err := inits.Redis(cfg.Session.RedisConn)
		if err != nil {
			l.Fatal("error initializing Redis connection", zap.Error(err))
		}
		sessions = session.NewRedis(rdb)
	default:
		l.Fatal("unknown session backend", zap.String("backend", cfg.Session.Backend))
	}

	// 准备 handler app
	app := handlers.NewApp(
		l,
		users.New(st, l),
		catalog.New(st, l),
		sessions,
		cfg.System.StaticDir,
	)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定路由
	app.Register(e)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
