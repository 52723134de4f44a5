package constants

import "time"

const (
	SessionCookieName = "navigator_session"
	CacheKeySession   = "navigator:session:%s"
)

const (
	// 会话有效期，每次保存时刷新
	SessionExpire = 24 * time.Hour
)
