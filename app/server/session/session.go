package session

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Session 是每个客户端的临时状态。
// 登录流程的全部可变状态（验证码答案、失败计数）都在这里，
// 随每次操作写回后端
type Session struct {
	ID string `json:"-"`

	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`

	RequireCaptcha      bool   `json:"require_captcha,omitempty"`
	CaptchaAnswer       string `json:"captcha_answer,omitempty"`
	FailedLoginAttempts int    `json:"failed_login_attempts,omitempty"`
}

// Reset 清空除 ID 外的全部状态（登出）
func (s *Session) Reset() {
	s.LoggedIn = false
	s.Username = ""
	s.Role = ""
	s.RequireCaptcha = false
	s.CaptchaAnswer = ""
	s.FailedLoginAttempts = 0
}

// Manager 管理会话的装载与回写。
// Get 在没有会话时创建一个新的空会话并下发 cookie
type Manager interface {
	Get(c echo.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Destroy(c echo.Context, s *Session) error
}

const contextKey = "session"

// FromContext 取出由中间件装载的会话
func FromContext(c echo.Context) *Session {
	s, _ := c.Get(contextKey).(*Session)
	return s
}

// ToContext 把会话挂到请求上下文，供后续 handler 使用
func ToContext(c echo.Context, s *Session) {
	c.Set(contextKey, s)
}
