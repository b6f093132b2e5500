package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/domain/services"
	"community-http-service/internal/domain/services/container"
	"community-http-service/internal/error/code"
	"community-http-service/internal/error/response"
)

// InterfaceUserController 定义用户管理控制器接口
type InterfaceUserController interface {
	UpdateUserRole()
}

// UserController 处理用户管理相关的请求
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户管理控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateUserRoleRequest 表示角色变更请求
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required" example:"STAFF"`
}

// HandleUserFunc 返回一个处理用户管理请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "updateUserRole":
			controller.UpdateUserRole()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// UpdateUserRole 变更用户角色
// @Summary      变更用户角色
// @Description  仅秘书可以变更用户角色，升级为员工角色时自动创建员工记录，降级时删除
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body UpdateUserRoleRequest true "新角色"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [patch]
// @Security     BearerAuth
func (c *UserController) UpdateUserRole() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "用户ID不合法", nil)
		return
	}

	var req UpdateUserRoleRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "角色不合法: "+req.Role, nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUserRole(uint(id), role)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "变更用户角色失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, user)
}
