package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ai-link-navigator/app/server/constants"
)

// MemoryManager 把会话保存在进程内，供单机部署和测试使用。
// 注意进程重启即全员登出
type MemoryManager struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewMemory() *MemoryManager {
	return &MemoryManager{sessions: make(map[string]Session)}
}

func (m *MemoryManager) Get(c echo.Context) (*Session, error) {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return m.issue(c)
	}

	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return m.issue(c)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if stored, ok := m.sessions[id.String()]; ok {
		s := stored
		s.ID = id.String()
		return &s, nil
	}
	return &Session{ID: id.String()}, nil
}

func (m *MemoryManager) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryManager) Destroy(c echo.Context, s *Session) error {
	m.mu.Lock()
	delete(m.sessions, s.ID)
	m.mu.Unlock()

	s.Reset()
	expireCookie(c)
	return nil
}

func (m *MemoryManager) issue(c echo.Context) (*Session, error) {
	s := &Session{ID: uuid.NewString()}
	setCookie(c, s.ID)
	return s, nil
}
