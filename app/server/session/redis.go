package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"ai-link-navigator/app/server/constants"
)

// RedisManager 把会话状态以 JSON 形式存进 redis ，
// 客户端只持有一个随机 ID 的 cookie
type RedisManager struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *RedisManager {
	return &RedisManager{rdb: rdb}
}

func (m *RedisManager) Get(c echo.Context) (*Session, error) {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return m.issue(c)
	}

	// cookie 里必须是合法的 UUID ，不是就当没有会话重新发
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return m.issue(c)
	}

	s := &Session{ID: id.String()}

	rctx := c.Request().Context()
	cacheBytes, err := m.rdb.Get(rctx, fmt.Sprintf(constants.CacheKeySession, s.ID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// 会话已过期，沿用原 ID 从空状态开始
			return s, nil
		}
		return nil, fmt.Errorf("query session cache: %w", err)
	}

	if err = json.Unmarshal(cacheBytes, s); err != nil {
		// 无效的缓存，清理掉
		m.rdb.Del(rctx, fmt.Sprintf(constants.CacheKeySession, s.ID))
		return s, nil
	}

	return s, nil
}

func (m *RedisManager) Save(ctx context.Context, s *Session) error {
	cacheBytes, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := fmt.Sprintf(constants.CacheKeySession, s.ID)
	if err := m.rdb.Set(ctx, key, cacheBytes, constants.SessionExpire).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (m *RedisManager) Destroy(c echo.Context, s *Session) error {
	key := fmt.Sprintf(constants.CacheKeySession, s.ID)
	if err := m.rdb.Del(c.Request().Context(), key).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}

	s.Reset()
	expireCookie(c)
	return nil
}

// issue 创建空会话并下发新 cookie
func (m *RedisManager) issue(c echo.Context) (*Session, error) {
	s := &Session{ID: uuid.NewString()}
	setCookie(c, s.ID)
	return s, nil
}

func setCookie(c echo.Context, id string) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func expireCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
