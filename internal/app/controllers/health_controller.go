package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"community-http-service/internal/app/middleware"
	"community-http-service/internal/domain/services/container"
	"community-http-service/internal/error/code"
	"community-http-service/internal/error/response"
)

// HealthController 处理健康检查相关的请求
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建一个新的健康检查控制器
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.CacheStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Ping 心跳检查
// @Summary      心跳检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// Status 服务状态检查，包含数据库和Redis连通性
// @Summary      服务状态检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health/status [get]
func (c *HealthController) Status() {
	status := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	dbStatus := "ok"
	if sqlDB, err := c.Container.GetDB().DB(); err != nil {
		dbStatus = "error: " + err.Error()
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}
	status["database"] = dbStatus

	redisStatus := "disabled"
	if redisService := c.Container.GetRedisService(); redisService != nil {
		redisStatus = "ok"
		if err := redisService.Ping(); err != nil {
			redisStatus = "error: " + err.Error()
		}
	}
	status["redis"] = redisStatus

	response.Success(c.Ctx, status)
}

// CacheStats 响应缓存统计
// @Summary      响应缓存统计
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health/cache-stats [get]
func (c *HealthController) CacheStats() {
	response.Success(c.Ctx, middleware.CacheStats())
}
