package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-link-navigator/app/server/models"
	"ai-link-navigator/app/server/session"
)

func runGuard(t *testing.T, mw echo.MiddlewareFunc, s *session.Session, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if s != nil {
		session.ToContext(c, s)
	}

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireLoginPageRedirect(t *testing.T) {
	rec := runGuard(t, RequireLogin(true), &session.Session{}, "/admin.html")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login.html?next=%2Fadmin.html", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireLoginAPI(t *testing.T) {
	rec := runGuard(t, RequireLogin(false), &session.Session{}, "/api/data")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = runGuard(t, RequireLogin(false), &session.Session{LoggedIn: true, Username: "u", Role: models.RoleUser}, "/api/data")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	authed := &session.Session{LoggedIn: true, Username: "u", Role: models.RoleUser}

	// 页面路由静默跳回首页
	rec := runGuard(t, RequireAdmin(true), authed, "/admin.html")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/index.html", rec.Header().Get(echo.HeaderLocation))

	// API 路由直接 403
	rec = runGuard(t, RequireAdmin(false), authed, "/api/users")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := &session.Session{LoggedIn: true, Username: "a", Role: models.RoleAdmin}
	rec = runGuard(t, RequireAdmin(false), admin, "/api/users")
	assert.Equal(t, http.StatusOK, rec.Code)
}
