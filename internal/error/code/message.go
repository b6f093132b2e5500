package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrTokenInvalid:     "无效的认证令牌",
	ErrTokenExpired:     "登录已过期，请重新登录",
	ErrPermissionDenied: "权限不足",
	ErrTooManyRequests:  "请求频率过高，请稍后再试",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "用户已存在",
	ErrUserPasswordIncorrect: "邮箱或密码错误",
	ErrUserEmailInvalid:      "邮箱格式错误",
	ErrUserPasswordTooShort:  "密码长度至少为6位",

	// 报修工单相关错误码
	ErrIssueNotFound:      "工单不存在",
	ErrIssueAlreadyTaken:  "工单已被领取",
	ErrIssueNoStaffRecord: "该用户没有关联的员工记录",
	ErrIssueStatusInvalid: "工单状态不合法",

	// 公告相关错误码
	ErrNoticeNotFound: "公告不存在",

	// 员工相关错误码
	ErrStaffNotFound: "员工不存在",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrTokenExpired:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusConflict,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrUserEmailInvalid:      StatusUnprocessableEntity,
	ErrUserPasswordTooShort:  StatusUnprocessableEntity,

	// 报修工单相关错误码
	ErrIssueNotFound:      StatusNotFound,
	ErrIssueAlreadyTaken:  StatusConflict,
	ErrIssueNoStaffRecord: StatusBadRequest,
	ErrIssueStatusInvalid: StatusBadRequest,

	// 公告相关错误码
	ErrNoticeNotFound: StatusNotFound,

	// 员工相关错误码
	ErrStaffNotFound: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
