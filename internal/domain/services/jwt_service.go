package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/infrastructure/config"
)

// 令牌有效期为7天，过期后必须重新登录（无吊销机制）
const tokenValidity = 7 * 24 * time.Hour

// 令牌校验失败的具体原因
var (
	ErrTokenMalformed        = errors.New("令牌格式错误")
	ErrTokenExpired          = errors.New("令牌已过期")
	ErrTokenSignatureInvalid = errors.New("令牌签名无效")
	ErrTokenMissingRole      = errors.New("令牌缺少角色信息")
)

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(user *models.User) (string, error)
	ParseToken(tokenString string) (*AuthClaims, error)
	Login(email, password string) (*LoginResult, error)
}

// AuthClaims 定义JWT令牌的声明结构
type AuthClaims struct {
	UserID uint        `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	Name   string      `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// LoginResult 表示登录结果
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "community-http-service",
		DB:        db,
	}
}

// GenerateToken 生成携带身份声明的JWT令牌
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ParseToken 解析并校验JWT令牌，返回其中的身份声明
func (s *JWTService) ParseToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 校验签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) {
			switch {
			case vErr.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrTokenMalformed
			case vErr.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
				return nil, ErrTokenExpired
			case vErr.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				return nil, ErrTokenSignatureInvalid
			}
		}
		return nil, ErrTokenMalformed
	}

	if !token.Valid {
		return nil, ErrTokenSignatureInvalid
	}

	// 能解码但缺少角色声明的令牌视为无效
	role, ok := models.ParseRole(string(claims.Role))
	if !ok {
		return nil, ErrTokenMissingRole
	}
	claims.Role = role

	return claims, nil
}

// Login 校验邮箱密码并签发令牌
func (s *JWTService) Login(email, password string) (*LoginResult, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 未设置密码的账户不允许密码登录
	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  &user,
	}, nil
}
