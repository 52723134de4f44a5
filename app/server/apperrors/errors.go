package apperrors

import (
	"errors"
	"net/http"
)

// 业务错误。全部在请求边界被翻译成 JSON 响应，任何一种都不会使进程退出
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCaptchaMismatch    = errors.New("captcha mismatch")
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("duplicate username")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmptyField         = errors.New("empty field")
	ErrLastAdminDemotion  = errors.New("last admin demotion")
	ErrSelfDemotion       = errors.New("self demotion")
	ErrLastAdminDeletion  = errors.New("last admin deletion")
	ErrSelfDeletion       = errors.New("self deletion")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrStorageFailure     = errors.New("storage failure")
)

// Map 将业务错误映射到 HTTP 状态码和用户可见的提示文本。
// 未知错误一律按内部错误处理，不对外泄露细节
func Map(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "无效的账号或密码。"
	case errors.Is(err, ErrCaptchaMismatch):
		return http.StatusBadRequest, "验证码错误，请重试。"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "用户不存在"
	case errors.Is(err, ErrDuplicateUsername):
		return http.StatusBadRequest, "用户名已存在"
	case errors.Is(err, ErrInvalidRole):
		return http.StatusBadRequest, "无效的角色，必须是 \"admin\" 或 \"user\""
	case errors.Is(err, ErrEmptyField):
		return http.StatusBadRequest, "用户名和密码不能为空"
	case errors.Is(err, ErrLastAdminDemotion):
		return http.StatusBadRequest, "无法降级唯一的管理员账号"
	case errors.Is(err, ErrSelfDemotion):
		return http.StatusBadRequest, "无法降级当前登录的管理员账号"
	case errors.Is(err, ErrLastAdminDeletion):
		return http.StatusBadRequest, "无法删除唯一的管理员账号"
	case errors.Is(err, ErrSelfDeletion):
		return http.StatusBadRequest, "无法删除当前登录的用户"
	case errors.Is(err, ErrInvalidFormat):
		return http.StatusBadRequest, "无效的请求格式，需要JSON"
	case errors.Is(err, ErrStorageFailure):
		return http.StatusInternalServerError, "保存数据时出错"
	default:
		return http.StatusInternalServerError, "服务器内部错误"
	}
}
