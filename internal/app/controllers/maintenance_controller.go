package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"community-http-service/internal/domain/services"
	"community-http-service/internal/domain/services/container"
	"community-http-service/internal/error/code"
	"community-http-service/internal/error/response"
)

// InterfaceMaintenanceController 定义物业费控制器接口
type InterfaceMaintenanceController interface {
	GetMaintenanceList()
	CreateMaintenance()
}

// MaintenanceController 处理物业费相关的请求
type MaintenanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMaintenanceController 创建一个新的物业费控制器
func NewMaintenanceController(ctx *gin.Context, container *container.ServiceContainer) *MaintenanceController {
	return &MaintenanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateMaintenanceRequest 表示创建缴费记录请求
type CreateMaintenanceRequest struct {
	UserID uint    `json:"user_id" binding:"required" example:"3"`
	Amount float64 `json:"amount" example:"1500"`
	Status string  `json:"status" example:"DUE"`
}

// HandleMaintenanceFunc 返回一个处理物业费请求的Gin处理函数
func HandleMaintenanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMaintenanceController(ctx, container)

		switch method {
		case "getMaintenanceList":
			controller.GetMaintenanceList()
		case "createMaintenance":
			controller.CreateMaintenance()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetMaintenanceList 获取缴费记录列表
// @Summary      获取缴费记录列表
// @Description  获取所有物业费缴费记录，按创建时间倒序
// @Tags         Maintenance
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /maintenance [get]
// @Security     BearerAuth
func (c *MaintenanceController) GetMaintenanceList() {
	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	records, err := maintenanceService.GetAllMaintenance()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询缴费记录失败: "+err.Error(), nil)
		return
	}
	response.Success(c.Ctx, records)
}

// CreateMaintenance 创建缴费记录
// @Summary      创建缴费记录
// @Description  仅秘书可以为住户创建物业费缴费记录
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        request body CreateMaintenanceRequest true "缴费记录"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /maintenance [post]
// @Security     BearerAuth
func (c *MaintenanceController) CreateMaintenance() {
	var req CreateMaintenanceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	record, err := maintenanceService.CreateMaintenance(req.UserID, req.Amount, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMaintenanceUserRequired), errors.Is(err, services.ErrMaintenanceStatusInvalid):
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		case errors.Is(err, services.ErrUserNotFound):
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建缴费记录失败: "+err.Error(), nil)
		}
		return
	}

	response.Created(c.Ctx, record)
}
