package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ai-link-navigator/app/server/apperrors"
)

type failResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// 登录失败时提示前端下次要带验证码
	RequireCaptcha bool `json:"require_captcha,omitempty"`
}

// er 把业务错误翻译成 {success:false, message} 响应
func (a *App) er(c echo.Context, err error) error {
	statusCode, message := apperrors.Map(err)
	if statusCode == http.StatusInternalServerError {
		a.l.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.JSON(statusCode, &failResponse{Success: false, Message: message})
}

// erMsg 用自定义文本覆盖默认提示（需要带上用户名之类的场景）
func (a *App) erMsg(c echo.Context, err error, message string) error {
	statusCode, _ := apperrors.Map(err)
	return c.JSON(statusCode, &failResponse{Success: false, Message: message})
}
