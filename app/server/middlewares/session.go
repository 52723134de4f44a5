package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ai-link-navigator/app/server/session"
)

// Session 为每个请求装载会话并挂到 context 上。
// 会话后端不可用时直接失败，不降级成匿名请求
func Session(m session.Manager, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := m.Get(c)
			if err != nil {
				l.Error("failed to load session", zap.Error(err))
				return c.NoContent(http.StatusInternalServerError)
			}

			session.ToContext(c, s)
			return next(c)
		}
	}
}
