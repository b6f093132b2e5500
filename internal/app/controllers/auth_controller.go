package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"community-http-service/internal/domain/services"
	"community-http-service/internal/domain/services/container"
	"community-http-service/internal/error/code"
	"community-http-service/internal/error/response"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Register()
	Login()
	Logout()
}

// AuthController 处理注册登录请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Email      string `json:"email" binding:"required" example:"owner@example.com"`
	Name       string `json:"name" example:"Flat Owner"`
	Password   string `json:"password" binding:"required" example:"password"`
	Role       string `json:"role" example:"OWNER"`
	Block      string `json:"block" example:"B"`
	FlatNo     string `json:"flat_no" example:"202"`
	WorkerType string `json:"worker_type" example:"Electrician"`
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"secretary@example.com"`
	Password string `json:"password" binding:"required" example:"secretary123"`
}

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"100004"`
	Message string      `json:"message" example:"无效的认证令牌"`
	Data    interface{} `json:"data"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Register 注册新用户
// @Summary      User Registration
// @Description  Register a new community member. WORKER registrations also create a linked staff record.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration parameters"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Register(services.RegisterInput{
		Email:      req.Email,
		Name:       req.Name,
		Password:   req.Password,
		Role:       req.Role,
		Block:      req.Block,
		FlatNo:     req.FlatNo,
		WorkerType: req.WorkerType,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailRequired):
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		case errors.Is(err, services.ErrEmailInvalid):
			response.FailWithMessage(c.Ctx, code.ErrUserEmailInvalid, err.Error(), nil)
		case errors.Is(err, services.ErrPasswordTooShort):
			response.FailWithMessage(c.Ctx, code.ErrUserPasswordTooShort, err.Error(), nil)
		case errors.Is(err, services.ErrUserAlreadyExist):
			response.FailWithMessage(c.Ctx, code.ErrUserAlreadyExist, err.Error(), nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "注册失败: "+err.Error(), nil)
		}
		return
	}

	// 注册成功后直接签发令牌
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(user)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "生成令牌失败", nil)
		return
	}

	c.setTokenCookie(token)
	response.Created(c.Ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// Login 处理用户登录
// @Summary      User Login
// @Description  Verify email and password, return a JWT token valid for 7 days
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "登录失败: "+err.Error(), nil)
		return
	}

	c.setTokenCookie(result.Token)
	response.Success(c.Ctx, result)
}

// Logout 退出登录，清除令牌Cookie
// @Summary      User Logout
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (c *AuthController) Logout() {
	c.Ctx.SetCookie("token", "", -1, "/", "", false, true)
	response.Success(c.Ctx, gin.H{"message": "已退出登录"})
}

// setTokenCookie 同时通过HTTP-only Cookie下发令牌，供浏览器端使用
func (c *AuthController) setTokenCookie(token string) {
	maxAge := 7 * 24 * 60 * 60
	c.Ctx.SetCookie("token", token, maxAge, "/", "", false, true)
}
