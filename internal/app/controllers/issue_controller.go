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
)

// InterfaceIssueController 定义报修工单控制器接口
type InterfaceIssueController interface {
	GetIssues()
	CreateIssue()
	TakeIssue()
	ResolveIssue()
	UpdateIssueStatus()
	DeleteIssue()
}

// IssueController 处理报修工单相关的请求
type IssueController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewIssueController 创建一个新的工单控制器
func NewIssueController(ctx *gin.Context, container *container.ServiceContainer) *IssueController {
	return &IssueController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateIssueRequest 表示报修请求
type CreateIssueRequest struct {
	Description string `json:"description" binding:"required" example:"Elevator not working in Block A"`
}

// TakeIssueRequest 表示领取工单请求，秘书可指派员工
type TakeIssueRequest struct {
	StaffID *uint `json:"staff_id" example:"3"`
}

// ResolveIssueRequest 表示解决工单请求
type ResolveIssueRequest struct {
	Resolution string `json:"resolution" example:"Replaced the fuse"`
}

// UpdateIssueStatusRequest 表示秘书的状态改写请求
type UpdateIssueStatusRequest struct {
	Status string `json:"status" binding:"required" example:"OPEN"`
}

// HandleIssueFunc 返回一个处理工单请求的Gin处理函数
func HandleIssueFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewIssueController(ctx, container)

		switch method {
		case "getIssues":
			controller.GetIssues()
		case "createIssue":
			controller.CreateIssue()
		case "takeIssue":
			controller.TakeIssue()
		case "resolveIssue":
			controller.ResolveIssue()
		case "updateIssueStatus":
			controller.UpdateIssueStatus()
		case "deleteIssue":
			controller.DeleteIssue()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// issueID 解析路径中的工单ID
func (c *IssueController) issueID() (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "工单ID不合法", nil)
		return 0, false
	}
	return uint(id), true
}

// failIssue 将服务层错误映射为响应
func (c *IssueController) failIssue(err error) {
	switch {
	case errors.Is(err, services.ErrIssueNotFound):
		response.Fail(c.Ctx, code.ErrIssueNotFound, nil)
	case errors.Is(err, services.ErrIssueAlreadyTaken):
		response.Fail(c.Ctx, code.ErrIssueAlreadyTaken, nil)
	case errors.Is(err, services.ErrNoStaffRecord):
		response.Fail(c.Ctx, code.ErrIssueNoStaffRecord, nil)
	case errors.Is(err, services.ErrIssueDescriptionRequired):
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
	case errors.Is(err, services.ErrIssueStatusInvalid):
		response.Fail(c.Ctx, code.ErrIssueStatusInvalid, nil)
	case errors.Is(err, services.ErrForbidden):
		response.Forbidden(c.Ctx)
	default:
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "工单操作失败: "+err.Error(), nil)
	}
}

// GetIssues 获取工单列表
// @Summary      获取工单列表
// @Description  获取所有报修工单，按创建时间倒序，附带报修人、负责人和解决人信息
// @Tags         Issue
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /issues [get]
func (c *IssueController) GetIssues() {
	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	issues, err := issueService.GetAllIssues()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询工单列表失败: "+err.Error(), nil)
		return
	}
	response.Success(c.Ctx, issues)
}

// CreateIssue 创建报修工单
// @Summary      创建报修工单
// @Description  登录用户报修，新工单状态为OPEN且没有负责人
// @Tags         Issue
// @Accept       json
// @Produce      json
// @Param        request body CreateIssueRequest true "报修参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /issues [post]
// @Security     BearerAuth
func (c *IssueController) CreateIssue() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req CreateIssueRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	reporterID := caller.UserID
	issue, err := issueService.CreateIssue(req.Description, &reporterID)
	if err != nil {
		c.failIssue(err)
		return
	}
	response.Created(c.Ctx, issue)
}

// TakeIssue 领取工单
// @Summary      领取工单
// @Description  员工领取工单或秘书指派员工，工单转为IN_PROGRESS。已被领取的工单返回409。
// @Tags         Issue
// @Accept       json
// @Produce      json
// @Param        id path int true "工单ID"
// @Param        request body TakeIssueRequest false "秘书指派参数"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /issues/{id}/take [post]
// @Security     BearerAuth
func (c *IssueController) TakeIssue() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, ok := c.issueID()
	if !ok {
		return
	}

	// 请求体可选
	var req TakeIssueRequest
	_ = c.Ctx.ShouldBindJSON(&req)

	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	issue, err := issueService.TakeIssue(id, caller, req.StaffID)
	if err != nil {
		c.failIssue(err)
		return
	}
	response.Success(c.Ctx, issue)
}

// ResolveIssue 解决工单
// @Summary      解决工单
// @Description  当前负责的员工或秘书将工单置为RESOLVED并记录处理说明
// @Tags         Issue
// @Accept       json
// @Produce      json
// @Param        id path int true "工单ID"
// @Param        request body ResolveIssueRequest false "处理说明"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /issues/{id}/resolve [post]
// @Security     BearerAuth
func (c *IssueController) ResolveIssue() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, ok := c.issueID()
	if !ok {
		return
	}

	var req ResolveIssueRequest
	_ = c.Ctx.ShouldBindJSON(&req)

	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	issue, err := issueService.ResolveIssue(id, caller, req.Resolution)
	if err != nil {
		c.failIssue(err)
		return
	}
	response.Success(c.Ctx, issue)
}

// UpdateIssueStatus 秘书改写工单状态
// @Summary      改写工单状态
// @Description  仅秘书可用。状态为OPEN时执行重新打开逻辑，清空负责人和解决信息。
// @Tags         Issue
// @Accept       json
// @Produce      json
// @Param        id path int true "工单ID"
// @Param        request body UpdateIssueStatusRequest true "目标状态"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /issues/{id} [patch]
// @Security     BearerAuth
func (c *IssueController) UpdateIssueStatus() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, ok := c.issueID()
	if !ok {
		return
	}

	var req UpdateIssueStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	status, ok := models.ParseIssueStatus(req.Status)
	if !ok {
		response.Fail(c.Ctx, code.ErrIssueStatusInvalid, nil)
		return
	}

	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	issue, err := issueService.UpdateIssueStatus(id, caller, status)
	if err != nil {
		c.failIssue(err)
		return
	}
	response.Success(c.Ctx, issue)
}

// DeleteIssue 删除工单
// @Summary      删除工单
// @Description  仅秘书或报修人本人可以删除
// @Tags         Issue
// @Produce      json
// @Param        id path int true "工单ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /issues/{id} [delete]
// @Security     BearerAuth
func (c *IssueController) DeleteIssue() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, ok := c.issueID()
	if !ok {
		return
	}

	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	if err := issueService.DeleteIssue(id, caller); err != nil {
		c.failIssue(err)
		return
	}
	response.Success(c.Ctx, nil)
}
