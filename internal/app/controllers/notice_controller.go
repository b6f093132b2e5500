package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"community-http-service/internal/app/middleware"
	"community-http-service/internal/domain/services"
	"community-http-service/internal/domain/services/container"
	"community-http-service/internal/error/code"
	"community-http-service/internal/error/response"
)

// InterfaceNoticeController 定义公告控制器接口
type InterfaceNoticeController interface {
	GetNotices()
	CreateNotice()
	DeleteNotice()
}

// NoticeController 处理公告相关的请求
type NoticeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNoticeController 创建一个新的公告控制器
func NewNoticeController(ctx *gin.Context, container *container.ServiceContainer) *NoticeController {
	return &NoticeController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateNoticeRequest 表示发布公告请求
type CreateNoticeRequest struct {
	Title   string `json:"title" binding:"required" example:"Water Supply Maintenance"`
	Content string `json:"content" binding:"required" example:"Water supply will be off from 2 PM to 4 PM on Friday."`
}

// HandleNoticeFunc 返回一个处理公告请求的Gin处理函数
func HandleNoticeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNoticeController(ctx, container)

		switch method {
		case "getNotices":
			controller.GetNotices()
		case "createNotice":
			controller.CreateNotice()
		case "deleteNotice":
			controller.DeleteNotice()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetNotices 获取公告列表
// @Summary      获取公告列表
// @Description  获取所有公告，按创建时间倒序，附带发布人信息
// @Tags         Notice
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /notices [get]
func (c *NoticeController) GetNotices() {
	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notices, err := noticeService.GetAllNotices()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询公告列表失败: "+err.Error(), nil)
		return
	}
	response.Success(c.Ctx, notices)
}

// CreateNotice 发布公告
// @Summary      发布公告
// @Description  仅秘书可以发布公告，标题和内容不能为空
// @Tags         Notice
// @Accept       json
// @Produce      json
// @Param        request body CreateNoticeRequest true "公告内容"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /notices [post]
// @Security     BearerAuth
func (c *NoticeController) CreateNotice() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req CreateNoticeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notice, err := noticeService.CreateNotice(req.Title, req.Content, caller.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNoticeFieldsRequired) {
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "发布公告失败: "+err.Error(), nil)
		return
	}
	response.Created(c.Ctx, notice)
}

// DeleteNotice 删除公告
// @Summary      删除公告
// @Description  仅发布人本人或秘书可以删除
// @Tags         Notice
// @Produce      json
// @Param        id path int true "公告ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /notices/{id} [delete]
// @Security     BearerAuth
func (c *NoticeController) DeleteNotice() {
	caller, ok := middleware.CurrentCaller(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "公告ID不合法", nil)
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	if err := noticeService.DeleteNotice(uint(id), caller); err != nil {
		switch {
		case errors.Is(err, services.ErrNoticeNotFound):
			response.Fail(c.Ctx, code.ErrNoticeNotFound, nil)
		case errors.Is(err, services.ErrForbidden):
			response.Forbidden(c.Ctx)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除公告失败: "+err.Error(), nil)
		}
		return
	}
	response.Success(c.Ctx, nil)
}
