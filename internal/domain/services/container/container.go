package container

import (
	"sync"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"community-http-service/internal/domain/services"
	"community-http-service/internal/infrastructure/config"
	Logger "community-http-service/pkg/logger"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService services.InterfaceJWTService

	// 数据存储服务
	redisService services.InterfaceRedisService

	// 业务服务
	userService        services.InterfaceUserService
	issueService       services.InterfaceIssueService
	noticeService      services.InterfaceNoticeService
	staffService       services.InterfaceStaffService
	maintenanceService services.InterfaceMaintenanceService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db)

	// 初始化Redis服务并测试连接，不可用时放弃缓存
	if c.redis != nil {
		redisService := services.NewRedisService(c.config)
		if err := redisService.Ping(); err != nil {
			Logger.Warning("Redis连接测试失败: %v，将不使用Redis缓存", err)
		} else {
			c.redisService = redisService
		}
	}

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config)
	c.issueService = services.NewIssueService(c.db, c.config)
	c.noticeService = services.NewNoticeService(c.db, c.config)
	c.staffService = services.NewStaffService(c.db, c.config)
	c.maintenanceService = services.NewMaintenanceService(c.db, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "user":
		return c.userService
	case "issue":
		return c.issueService
	case "notice":
		return c.noticeService
	case "staff":
		return c.staffService
	case "maintenance":
		return c.maintenanceService
	default:
		return nil
	}
}

// GetRedisService 获取Redis服务，Redis不可用时返回nil
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
