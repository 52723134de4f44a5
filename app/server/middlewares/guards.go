package middlewares

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"ai-link-navigator/app/server/models"
	"ai-link-navigator/app/server/session"
)

type guardResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RequireLogin 保护需要登录的资源。
// 页面路由（ redirectPage ）重定向到登录页并带上原始地址，登录后跳回；
// API 路由返回 401 JSON
func RequireLogin(redirectPage bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := session.FromContext(c)
			if s == nil || !s.LoggedIn {
				if redirectPage {
					return c.Redirect(http.StatusFound,
						"/login.html?next="+url.QueryEscape(c.Request().RequestURI))
				}
				return c.JSON(http.StatusUnauthorized, &guardResponse{
					Success: false,
					Message: "请先登录",
				})
			}
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireLogin 之后使用。
// 页面路由沿用原有行为：非管理员静默跳回首页；
// API 路由返回 403 ，不做静默降级
func RequireAdmin(redirectPage bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := session.FromContext(c)
			if s == nil || s.Role != models.RoleAdmin {
				if redirectPage {
					return c.Redirect(http.StatusFound, "/index.html")
				}
				return c.JSON(http.StatusForbidden, &guardResponse{
					Success: false,
					Message: "需要管理员权限",
				})
			}
			return next(c)
		}
	}
}
