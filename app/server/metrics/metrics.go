// Package metrics 定义本服务的全部自定义 Prometheus 指标，
// 指标名、标签和帮助文本都以这里为准
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "navigator"

// LoginAttemptsTotal 按结果统计登录尝试。
// result: success / invalid_credentials / captcha_mismatch
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// CatalogSavesTotal 统计目录全量保存的次数
var CatalogSavesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_saves_total",
		Help:      "Total number of full catalog replacements.",
	},
)
