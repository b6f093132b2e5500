package services

import "errors"

// 服务层的哨兵错误，由控制器映射为对应的错误码
var (
	// 用户相关
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserAlreadyExist   = errors.New("用户已存在")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrEmailRequired      = errors.New("邮箱和密码不能为空")
	ErrEmailInvalid       = errors.New("邮箱格式错误")
	ErrPasswordTooShort   = errors.New("密码长度至少为6位")
	ErrNameRequired       = errors.New("姓名不能为空")

	// 工单相关
	ErrIssueNotFound            = errors.New("工单不存在")
	ErrIssueAlreadyTaken        = errors.New("工单已被领取")
	ErrIssueDescriptionRequired = errors.New("工单描述不能为空")
	ErrIssueStatusInvalid       = errors.New("工单状态不合法")
	ErrNoStaffRecord            = errors.New("该用户没有关联的员工记录")

	// 公告相关
	ErrNoticeNotFound       = errors.New("公告不存在")
	ErrNoticeFieldsRequired = errors.New("公告标题和内容不能为空")

	// 员工相关
	ErrStaffNotFound     = errors.New("员工不存在")
	ErrStaffNameRequired = errors.New("员工姓名不能为空")

	// 缴费相关
	ErrMaintenanceUserRequired  = errors.New("缴费记录必须关联用户")
	ErrMaintenanceStatusInvalid = errors.New("缴费状态不合法")

	// 权限相关
	ErrForbidden = errors.New("没有权限执行该操作")
)
