package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ai-link-navigator/app/server/apperrors"
	"ai-link-navigator/app/server/models"
	"ai-link-navigator/app/server/session"
	"ai-link-navigator/app/server/users"
)

// userView 是接口响应里的用户，永远不含密码散列
type userView struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

func toUserView(u *models.User) userView {
	v := userView{
		Username: u.Username,
		Role:     u.Role,
	}
	if !u.CreatedAt.IsZero() {
		v.CreatedAt = u.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return v
}

type userCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type userUpdateRequest struct {
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (a *App) UserList(c echo.Context) error {
	list := a.users.List(c.Request().Context())

	views := make([]userView, 0, len(list))
	for i := range list {
		views = append(views, toUserView(&list[i]))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"users":   views,
	})
}

func (a *App) UserCreate(c echo.Context) error {
	rctx := c.Request().Context()

	var req userCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, apperrors.ErrInvalidFormat)
	}

	// 边界校验和业务层的检查同口径：必填项缺失报空字段，角色枚举错误单独报
	if err := c.Validate(&req); err != nil {
		if req.Username == "" || req.Password == "" {
			return a.er(c, apperrors.ErrEmptyField)
		}
		return a.er(c, apperrors.ErrInvalidRole)
	}

	// 没有指定角色就按普通用户处理
	if req.Role == "" {
		req.Role = models.RoleUser
	}

	user, err := a.users.Create(rctx, req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			return a.erMsg(c, err, fmt.Sprintf("用户名 %q 已存在", req.Username))
		}
		return a.er(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("用户 %q 创建成功", user.Username),
		"user":    toUserView(user),
	})
}

func (a *App) UserUpdate(c echo.Context) error {
	rctx := c.Request().Context()
	username := c.Param("username")
	actor := session.FromContext(c).Username

	var req userUpdateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, apperrors.ErrInvalidFormat)
	}

	user, err := a.users.Update(rctx, actor, username, users.UpdateInput{
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return a.erMsg(c, err, fmt.Sprintf("用户 %q 不存在", username))
		}
		return a.er(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("用户 %q 更新成功", username),
		"user":    toUserView(user),
	})
}

func (a *App) UserDelete(c echo.Context) error {
	rctx := c.Request().Context()
	username := c.Param("username")
	actor := session.FromContext(c).Username

	if err := a.users.Delete(rctx, actor, username); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return a.erMsg(c, err, fmt.Sprintf("用户 %q 不存在", username))
		}
		return a.er(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("用户 %q 已删除", username),
	})
}
