package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ai-link-navigator/app/server/middlewares"
)

// Register 绑定全部路由。
// 每条受保护路由显式挂上自己的守卫组合，页面和 API 的未授权行为不同：
// 页面重定向，API 返回 JSON 错误
func (a *App) Register(e *echo.Echo) {
	// 会话从这里进入每一个请求
	e.Use(middlewares.Session(a.sessions, a.l))

	// 页面
	e.GET("/", a.Root)
	e.GET("/login.html", a.LoginPage)
	e.GET("/logout", a.Logout)
	e.GET("/index.html", a.IndexPage, middlewares.RequireLogin(true))
	e.GET("/admin.html", a.AdminPage, middlewares.RequireLogin(true), middlewares.RequireAdmin(true))

	// 认证
	e.GET("/api/captcha-image", a.CaptchaImage)
	e.POST("/api/login", a.Login)
	e.GET("/api/user-info", a.UserInfo, middlewares.RequireLogin(false))

	// 目录数据，两个地址等价
	e.GET("/api/data", a.DataGet, middlewares.RequireLogin(false))
	e.GET("/data.json", a.DataGet, middlewares.RequireLogin(false))
	e.POST("/api/save-data", a.DataSave, middlewares.RequireLogin(false), middlewares.RequireAdmin(false))

	// 用户管理，仅管理员
	e.GET("/api/users", a.UserList, middlewares.RequireLogin(false), middlewares.RequireAdmin(false))
	e.POST("/api/users", a.UserCreate, middlewares.RequireLogin(false), middlewares.RequireAdmin(false))
	e.PUT("/api/users/:username", a.UserUpdate, middlewares.RequireLogin(false), middlewares.RequireAdmin(false))
	e.DELETE("/api/users/:username", a.UserDelete, middlewares.RequireLogin(false), middlewares.RequireAdmin(false))

	// 运维
	e.GET("/api/healthcheck", a.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
