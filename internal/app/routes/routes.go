package routes

import (
	_ "community-http-service/docs"
	"community-http-service/internal/app/controllers"
	"community-http-service/internal/app/middleware"
	"community-http-service/internal/domain/models"
	"community-http-service/internal/domain/services/container"
	"community-http-service/internal/infrastructure/config"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查的路由

	// 健康状态路由组
	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// 认证路由
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10)) // 每秒5个请求，最多突发10个
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))

	// 公告、工单、员工、缴费记录的公开列表
	api.GET("/notices", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleNoticeFunc(container, "getNotices"))
	api.GET("/issues", middleware.Cache(middleware.CacheConfig{Expiration: 10 * time.Second}), controllers.HandleIssueFunc(container, "getIssues"))
	api.GET("/staff", controllers.HandleStaffFunc(container, "getStaffList")) // 值班表走Redis缓存
	api.GET("/maintenance", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleMaintenanceFunc(container, "getMaintenanceList"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 登出与个人资料路由
	auth.POST("/auth/logout", controllers.HandleAuthFunc(container, "logout"))
	auth.GET("/auth/me", controllers.HandleProfileFunc(container, "getMe"))
	auth.GET("/me", controllers.HandleProfileFunc(container, "getMe"))
	auth.GET("/profile/me", controllers.HandleProfileFunc(container, "getMe"))
	auth.PATCH("/me", controllers.HandleProfileFunc(container, "updateProfile"))
	auth.PATCH("/profile", controllers.HandleProfileFunc(container, "updateProfile"))

	// 公告路由
	noticeGroup := auth.Group("/notices")
	noticeGroup.POST("", middleware.RequireRoles(models.RoleSecretary), controllers.HandleNoticeFunc(container, "createNotice"))
	noticeGroup.DELETE("/:id", controllers.HandleNoticeFunc(container, "deleteNotice"))

	// 工单路由
	issueGroup := auth.Group("/issues")
	issueGroup.POST("", controllers.HandleIssueFunc(container, "createIssue"))
	issueGroup.POST("/:id/take", middleware.RequireRoles(models.RoleStaff, models.RoleSecretary), controllers.HandleIssueFunc(container, "takeIssue"))
	issueGroup.POST("/:id/resolve", middleware.RequireRoles(models.RoleStaff, models.RoleSecretary), controllers.HandleIssueFunc(container, "resolveIssue"))
	issueGroup.POST("/:id/complete", middleware.RequireRoles(models.RoleStaff, models.RoleSecretary), controllers.HandleIssueFunc(container, "resolveIssue"))
	issueGroup.PATCH("/:id", middleware.RequireRoles(models.RoleSecretary), controllers.HandleIssueFunc(container, "updateIssueStatus"))
	issueGroup.DELETE("/:id", controllers.HandleIssueFunc(container, "deleteIssue"))

	// 物业员工路由
	staffGroup := auth.Group("/staff")
	staffGroup.POST("", middleware.RequireRoles(models.RoleSecretary), controllers.HandleStaffFunc(container, "createStaff"))
	staffGroup.PATCH("/:id", middleware.RequireRoles(models.RoleStaff, models.RoleSecretary), controllers.HandleStaffFunc(container, "updateStaffDuty"))

	// 物业费路由
	maintenanceGroup := auth.Group("/maintenance")
	maintenanceGroup.POST("", middleware.RequireRoles(models.RoleSecretary), controllers.HandleMaintenanceFunc(container, "createMaintenance"))

	// 用户管理路由
	userGroup := auth.Group("/users")
	userGroup.PATCH("/:id", middleware.RequireRoles(models.RoleSecretary), controllers.HandleUserFunc(container, "updateUserRole"))
}
