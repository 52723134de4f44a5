package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-link-navigator/app/server/constants"
)

func newRedisManager(t *testing.T) (*RedisManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedis(rdb), mr
}

func sessionKey(id string) string {
	return fmt.Sprintf(constants.CacheKeySession, id)
}

func TestRedisSaveRoundTrip(t *testing.T) {
	m, _ := newRedisManager(t)

	c, rec := newEchoContext("")
	s, err := m.Get(c)
	require.NoError(t, err)
	require.Len(t, rec.Result().Cookies(), 1)

	s.LoggedIn = true
	s.Username = "alice"
	s.Role = "admin"
	s.RequireCaptcha = true
	s.CaptchaAnswer = "AB3DE"
	s.FailedLoginAttempts = 2
	require.NoError(t, m.Save(c.Request().Context(), s))

	c2, _ := newEchoContext(s.ID)
	loaded, err := m.Get(c2)
	require.NoError(t, err)
	assert.True(t, loaded.LoggedIn)
	assert.Equal(t, "alice", loaded.Username)
	assert.Equal(t, "AB3DE", loaded.CaptchaAnswer)
	assert.Equal(t, 2, loaded.FailedLoginAttempts)
}

func TestRedisSaveSetsTTL(t *testing.T) {
	m, mr := newRedisManager(t)

	c, _ := newEchoContext("")
	s, _ := m.Get(c)
	require.NoError(t, m.Save(c.Request().Context(), s))

	// 每次保存都把有效期重置为完整时长
	assert.Equal(t, constants.SessionExpire, mr.TTL(sessionKey(s.ID)))
}

func TestRedisExpiredSession(t *testing.T) {
	m, mr := newRedisManager(t)

	c, _ := newEchoContext("")
	s, _ := m.Get(c)
	s.LoggedIn = true
	s.Username = "alice"
	require.NoError(t, m.Save(c.Request().Context(), s))

	mr.FastForward(constants.SessionExpire + time.Minute)

	// 过期后沿用原 ID 从空状态开始
	c2, _ := newEchoContext(s.ID)
	loaded, err := m.Get(c2)
	require.NoError(t, err)
	assert.Equal(t, s.ID, loaded.ID)
	assert.False(t, loaded.LoggedIn)
	assert.Empty(t, loaded.Username)
}

func TestRedisCorruptCacheCleanup(t *testing.T) {
	m, mr := newRedisManager(t)

	c, _ := newEchoContext("")
	s, _ := m.Get(c)
	require.NoError(t, mr.Set(sessionKey(s.ID), "{not json"))

	// 无效缓存按空会话处理，并被顺手清掉
	c2, _ := newEchoContext(s.ID)
	loaded, err := m.Get(c2)
	require.NoError(t, err)
	assert.False(t, loaded.LoggedIn)
	assert.False(t, mr.Exists(sessionKey(s.ID)))
}

func TestRedisDestroy(t *testing.T) {
	m, mr := newRedisManager(t)

	c, _ := newEchoContext("")
	s, _ := m.Get(c)
	s.LoggedIn = true
	require.NoError(t, m.Save(c.Request().Context(), s))

	c2, rec2 := newEchoContext(s.ID)
	loaded, err := m.Get(c2)
	require.NoError(t, err)
	require.NoError(t, m.Destroy(c2, loaded))

	assert.False(t, loaded.LoggedIn)
	assert.False(t, mr.Exists(sessionKey(s.ID)))

	// cookie 被立刻过期
	cookies := rec2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestRedisRejectsGarbageCookie(t *testing.T) {
	m, _ := newRedisManager(t)

	c, rec := newEchoContext("not-a-uuid")
	s, err := m.Get(c)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", s.ID)
	require.Len(t, rec.Result().Cookies(), 1)
}
