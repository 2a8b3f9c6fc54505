package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 业务指标
var (
	// RenderTotal 渲染次数，result 为 ok 或错误码
	RenderTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "textual_render_total",
		Help: "Total number of textual renders by result.",
	}, []string{"result"})

	// RenderScreens 每次成功渲染产生的屏幕数
	RenderScreens = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "textual_render_screens",
		Help:    "Number of screens produced per successful render.",
		Buckets: prometheus.LinearBuckets(5, 5, 8),
	})

	// VerifyTotal 签名验证次数，result 为 valid / invalid / error
	VerifyTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "textual_verify_total",
		Help: "Total number of signature verifications by result.",
	}, []string{"result"})
)

// ObserveRender 记录一次渲染结果
func ObserveRender(result string, screens int) {
	RenderTotal.WithLabelValues(result).Inc()
	if screens > 0 {
		RenderScreens.Observe(float64(screens))
	}
}

// ObserveVerify 记录一次验证结果
func ObserveVerify(result string) {
	VerifyTotal.WithLabelValues(result).Inc()
}
