package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"community-http-service/internal/app/middleware"
	"community-http-service/internal/domain/services"
	"community-http-service/internal/domain/services/container"
	"community-http-service/internal/error/code"
	"community-http-service/internal/error/response"
)

// InterfaceProfileController 定义个人资料控制器接口
type InterfaceProfileController interface {
	GetMe()
	UpdateProfile()
}

// ProfileController 处理当前用户的个人资料请求
type ProfileController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProfileController 创建一个新的个人资料控制器
func NewProfileController(ctx *gin.Context, container *container.ServiceContainer) *ProfileController {
	return &ProfileController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateProfileRequest 表示资料更新请求，省略的字段不修改
type UpdateProfileRequest struct {
	Name  *string `json:"name" example:"Flat Owner"`
	Photo *string `json:"photo" example:"https://example.com/avatar.png"`
}

// HandleProfileFunc 返回一个处理个人资料请求的Gin处理函数
func HandleProfileFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProfileController(ctx, container)

		switch method {
		case "getMe":
			controller.GetMe()
		case "updateProfile":
			controller.UpdateProfile()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetMe 获取当前用户的资料
// @Summary      获取当前用户资料
// @Description  根据令牌中的身份返回当前用户的资料和关联员工记录
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /me [get]
// @Security     BearerAuth
func (c *ProfileController) GetMe() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetProfile(caller.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询用户资料失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// UpdateProfile 更新当前用户的姓名和头像
// @Summary      更新当前用户资料
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body UpdateProfileRequest true "资料更新参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /profile [patch]
// @Security     BearerAuth
func (c *ProfileController) UpdateProfile() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req UpdateProfileRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateProfile(caller.UserID, services.UpdateProfileInput{
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired):
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		case errors.Is(err, services.ErrUserNotFound):
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新用户资料失败: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, user)
}
