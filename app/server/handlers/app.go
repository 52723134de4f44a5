package handlers

import (
	"go.uber.org/zap"

	"ai-link-navigator/app/server/catalog"
	"ai-link-navigator/app/server/session"
	"ai-link-navigator/app/server/users"
)

type App struct {
	l         *zap.Logger      // 日志
	users     *users.Service   // 账号与凭据
	catalog   *catalog.Service // 目录树
	sessions  session.Manager  // 会话后端
	staticDir string           // 前端页面目录
}

func NewApp(l *zap.Logger, u *users.Service, cat *catalog.Service, sm session.Manager, staticDir string) *App {
	return &App{
		l:         l,
		users:     u,
		catalog:   cat,
		sessions:  sm,
		staticDir: staticDir,
	}
}
