package server

import (
	"signing-core/internal/handler"
	"signing-core/internal/handler/response"
	"signing-core/pkg/monitor"
	"signing-core/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPRouter 初始化并返回一个 Gin Engine
func NewHTTPRouter(textual *handler.TextualHandler, info handler.ServiceInfo) *gin.Engine {
	// 0. 初始化监控指标与自定义校验规则
	monitor.Init()
	validator.Init()

	// 1. 创建 Engine (使用默认中间件: Logger, Recovery)
	r := gin.Default()

	// 2. 注册通用中间件
	r.Use(monitor.PrometheusMiddleware())

	// 3. 注册基础路由
	r.GET("/health", handler.HealthCheck(info))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 4. 注册 API 路由组
	api := r.Group("/api/v1")
	{
		api.GET("/ping", func(c *gin.Context) {
			response.Success(c, gin.H{"pong": true})
		})

		tg := api.Group("/textual")
		tg.POST("/render", textual.Render)
		tg.POST("/verify", textual.Verify)
		tg.POST("/address", textual.Address)
	}

	return r
}
