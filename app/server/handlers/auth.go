package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ai-link-navigator/app/server/apperrors"
	"ai-link-navigator/app/server/captcha"
	"ai-link-navigator/app/server/metrics"
	"ai-link-navigator/app/server/session"
)

const defaultLandingPage = "/index.html"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

type loginResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// Login 处理登录：
// 会话要求验证码时先核对验证码；凭据校验失败后强制要求验证码并重新生成答案。
// 成功后跳回最初请求的受保护地址（ next ），否则回首页
func (a *App) Login(c echo.Context) error {
	s := session.FromContext(c)
	rctx := c.Request().Context()

	// 绑定请求体
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, apperrors.ErrInvalidFormat)
	}

	// 已经要求验证码的会话先核对验证码，不区分大小写
	if s.RequireCaptcha {
		if !captcha.Verify(s.CaptchaAnswer, req.Captcha) {
			// 重新生成一份答案供下次尝试，要求验证码的标记保持不变
			if err := a.regenerateCaptcha(c, s); err != nil {
				return a.er(c, err)
			}
			metrics.LoginAttemptsTotal.WithLabelValues("captcha_mismatch").Inc()
			return c.JSON(http.StatusBadRequest, &failResponse{
				Success:        false,
				Message:        "验证码错误，请重试。",
				RequireCaptcha: true,
			})
		}
	}

	user, err := a.users.Verify(rctx, req.Username, req.Password)
	if err != nil {
		// 凭据错误：计数、强制验证码、重新生成答案
		s.FailedLoginAttempts++
		s.RequireCaptcha = true
		if err := a.regenerateCaptcha(c, s); err != nil {
			return a.er(c, err)
		}

		// 文案随失败次数变化，行为完全一致
		message := "无效的账号或密码。"
		if s.FailedLoginAttempts > 1 {
			message = "无效的账号或密码。请输入验证码。"
		}

		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return c.JSON(http.StatusUnauthorized, &failResponse{
			Success:        false,
			Message:        message,
			RequireCaptcha: true,
		})
	}

	// 登录成功，写入身份并清空验证码状态
	s.LoggedIn = true
	s.Username = user.Username
	s.Role = user.Role
	s.RequireCaptcha = false
	s.CaptchaAnswer = ""
	s.FailedLoginAttempts = 0

	if err := a.sessions.Save(rctx, s); err != nil {
		a.l.Error("failed to save session", zap.Error(err))
		return a.er(c, err)
	}

	redirectURL := c.QueryParam("next")
	if redirectURL == "" {
		redirectURL = defaultLandingPage
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, &loginResponse{
		Success:     true,
		Message:     "登录成功！",
		RedirectURL: redirectURL,
	})
}

// CaptchaImage 生成一份新的验证码挑战并覆盖会话里的答案
func (a *App) CaptchaImage(c echo.Context) error {
	s := session.FromContext(c)

	text, err := captcha.NewText()
	if err != nil {
		a.l.Error("failed to generate captcha", zap.Error(err))
		return a.er(c, err)
	}

	s.CaptchaAnswer = text
	if err := a.sessions.Save(c.Request().Context(), s); err != nil {
		a.l.Error("failed to save session", zap.Error(err))
		return a.er(c, err)
	}

	return c.Blob(http.StatusOK, "image/svg+xml", captcha.RenderSVG(text))
}

// UserInfo 返回当前登录用户的身份
func (a *App) UserInfo(c echo.Context) error {
	s := session.FromContext(c)
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"username": s.Username,
		"role":     s.Role,
	})
}

// Logout 无条件清空会话并跳回登录页
func (a *App) Logout(c echo.Context) error {
	s := session.FromContext(c)
	if err := a.sessions.Destroy(c, s); err != nil {
		a.l.Error("failed to destroy session", zap.Error(err))
	}
	return c.Redirect(http.StatusFound, "/login.html")
}

func (a *App) regenerateCaptcha(c echo.Context, s *session.Session) error {
	text, err := captcha.NewText()
	if err != nil {
		a.l.Error("failed to generate captcha", zap.Error(err))
		return err
	}
	s.CaptchaAnswer = text

	if err := a.sessions.Save(c.Request().Context(), s); err != nil {
		a.l.Error("failed to save session", zap.Error(err))
		return err
	}
	return nil
}
