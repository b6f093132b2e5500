package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/domain/services"
	"community-http-service/internal/error/code"
	"community-http-service/internal/error/response"
	"community-http-service/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// tokenCookieName 浏览器端使用的令牌Cookie名
const tokenCookieName = "token"

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken 从请求中定位令牌：优先Authorization头，其次Cookie
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		// 检查并移除 "Bearer " 前缀
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimSpace(authHeader[7:])
		}
		return authHeader
	}

	if cookie, err := c.Cookie(tokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// Authentication 通用的认证中间件：校验令牌并将身份写入请求上下文
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "缺少认证令牌", nil)
			c.Abort()
			return
		}

		claims, err := jwtService.ParseToken(tokenString)
		if err != nil {
			errorCode := code.ErrTokenInvalid
			if errors.Is(err, services.ErrTokenExpired) {
				errorCode = code.ErrTokenExpired
			}
			response.FailWithMessage(c, errorCode, err.Error(), nil)
			c.Abort()
			return
		}

		// 存储已验证的身份到上下文
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRoles 角色检查中间件，必须在Authentication之后使用。
// 有令牌但角色不在允许集合内时返回403，与401严格区分。
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	// 允许集合只构建一次
	allowedSet := make(map[models.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, exists := CurrentRole(c)
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if _, ok := allowedSet[role]; !ok {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentCaller 从上下文中读取已认证的调用者身份
func CurrentCaller(c *gin.Context) (services.Caller, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		return services.Caller{}, false
	}
	role, ok := CurrentRole(c)
	if !ok {
		return services.Caller{}, false
	}
	email, _ := c.Get("email")
	emailStr, _ := email.(string)

	id, ok := userID.(uint)
	if !ok {
		return services.Caller{}, false
	}

	return services.Caller{
		UserID: id,
		Email:  emailStr,
		Role:   role,
	}, true
}

// CurrentRole 从上下文中读取已认证的角色
func CurrentRole(c *gin.Context) (models.Role, bool) {
	value, exists := c.Get("role")
	if !exists {
		return "", false
	}
	role, ok := value.(models.Role)
	return role, ok
}
