package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"ai-link-navigator/app/server/session"
)

// Root 根路径按登录状态分流
func (a *App) Root(c echo.Context) error {
	s := session.FromContext(c)
	if s.LoggedIn {
		return c.Redirect(http.StatusFound, defaultLandingPage)
	}
	return c.Redirect(http.StatusFound, "/login.html")
}

// LoginPage 已登录用户不再看登录页，按 next 参数跳转
func (a *App) LoginPage(c echo.Context) error {
	s := session.FromContext(c)
	if s.LoggedIn {
		next := c.QueryParam("next")
		if next == "" {
			next = defaultLandingPage
		}
		return c.Redirect(http.StatusFound, next)
	}
	return c.File(filepath.Join(a.staticDir, "login.html"))
}

func (a *App) IndexPage(c echo.Context) error {
	return c.File(filepath.Join(a.staticDir, "index.html"))
}

func (a *App) AdminPage(c echo.Context) error {
	return c.File(filepath.Join(a.staticDir, "admin.html"))
}
