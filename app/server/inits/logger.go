package inits

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger 初始化导航服务的日志系统：
// 生产环境输出 JSON ，其余环境用带颜色的开发格式方便排查登录流程
func Logger(isProd bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)

	if isProd {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
