package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"community-http-service/internal/app/middleware"
	"community-http-service/internal/domain/models"
	"community-http-service/internal/domain/services"
	"community-http-service/internal/domain/services/container"
	"community-http-service/internal/error/code"
	"community-http-service/internal/error/response"
	Logger "community-http-service/pkg/logger"
)

// InterfaceStaffController 定义物业员工控制器接口
type InterfaceStaffController interface {
	GetStaffList()
	CreateStaff()
	UpdateStaffDuty()
}

// StaffController 处理物业员工相关的请求
type StaffController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStaffController 创建一个新的物业员工控制器
func NewStaffController(ctx *gin.Context, container *container.ServiceContainer) *StaffController {
	return &StaffController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateStaffRequest 表示创建员工请求
type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required" example:"Ravi"`
	Role     string `json:"role" example:"Cleaning"`
	IsOnDuty bool   `json:"is_on_duty" example:"false"`
}

// UpdateStaffDutyRequest 表示值班状态切换请求
type UpdateStaffDutyRequest struct {
	IsOnDuty *bool `json:"is_on_duty" binding:"required" example:"true"`
}

// HandleStaffFunc 返回一个处理物业员工请求的Gin处理函数
func HandleStaffFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStaffController(ctx, container)

		switch method {
		case "getStaffList":
			controller.GetStaffList()
		case "createStaff":
			controller.CreateStaff()
		case "updateStaffDuty":
			controller.UpdateStaffDuty()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetStaffList 获取员工列表
// @Summary      获取员工列表
// @Description  获取所有物业员工及其值班状态，按姓名排序。可用时走Redis缓存。
// @Tags         Staff
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /staff [get]
func (c *StaffController) GetStaffList() {
	// 优先读取Redis中的值班表缓存
	if redisService := c.Container.GetRedisService(); redisService != nil {
		if staff, err := redisService.GetDutyRoster(); err == nil {
			response.Success(c.Ctx, staff)
			return
		}
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.GetAllStaff()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询员工列表失败: "+err.Error(), nil)
		return
	}

	// 回填缓存，失败只记录日志
	if redisService := c.Container.GetRedisService(); redisService != nil {
		if err := redisService.CacheDutyRoster(staff); err != nil {
			Logger.Warning("缓存值班表失败: %v", err)
		}
	}

	response.Success(c.Ctx, staff)
}

// CreateStaff 创建员工记录
// @Summary      创建员工记录
// @Description  仅秘书可以直接创建员工记录（无关联用户账户）
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        request body CreateStaffRequest true "员工信息"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /staff [post]
// @Security     BearerAuth
func (c *StaffController) CreateStaff() {
	var req CreateStaffRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.CreateStaff(req.Name, req.Role, req.IsOnDuty)
	if err != nil {
		if errors.Is(err, services.ErrStaffNameRequired) {
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建员工失败: "+err.Error(), nil)
		return
	}

	c.invalidateDutyRoster()
	response.Created(c.Ctx, staff)
}

// UpdateStaffDuty 切换员工值班状态
// @Summary      切换员工值班状态
// @Description  秘书可切换任意员工的值班状态，员工本人可切换自己的
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        id path int true "员工ID"
// @Param        request body UpdateStaffDutyRequest true "值班状态"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /staff/{id} [patch]
// @Security     BearerAuth
func (c *StaffController) UpdateStaffDuty() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "员工ID不合法", nil)
		return
	}

	var req UpdateStaffDutyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)

	// 非秘书只能切换自己关联的员工记录
	if caller.Role != models.RoleSecretary {
		own, err := staffService.GetStaffByUserID(caller.UserID)
		if err != nil || own.ID != uint(id) {
			response.Forbidden(c.Ctx)
			return
		}
	}

	staff, err := staffService.UpdateStaffDuty(uint(id), *req.IsOnDuty)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			response.Fail(c.Ctx, code.ErrStaffNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新值班状态失败: "+err.Error(), nil)
		return
	}

	c.invalidateDutyRoster()
	response.Success(c.Ctx, staff)
}

// invalidateDutyRoster 员工数据变更后清除值班表缓存
func (c *StaffController) invalidateDutyRoster() {
	if redisService := c.Container.GetRedisService(); redisService != nil {
		if err := redisService.InvalidateDutyRoster(); err != nil {
			Logger.Warning("清除值班表缓存失败: %v", err)
		}
	}
}
