package handler

import (
	"signing-core/internal/handler/response"

	"github.com/gin-gonic/gin"
)

// ServiceInfo 健康检查中暴露的渲染配置，签名方据此确认摘要算法与支持的消息类型
type ServiceInfo struct {
	Version      string   `json:"version"`
	Digest       string   `json:"digest"`
	MessageTypes []string `json:"message_types"`
	ShowExpert   bool     `json:"show_expert"`
}

// HealthCheck godoc
// @Summary Check system health
// @Description 返回服务状态与当前渲染配置
// @Tags system
// @Produce  json
// @Success 200 {object} response.Response
// @Router /health [get]
func HealthCheck(info ServiceInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Success(c, gin.H{
			"status":  "UP",
			"service": "textual-server",
			"textual": info,
		})
	}
}
