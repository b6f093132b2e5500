package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 状态冲突.
	StatusConflict = 409
	// StatusUnprocessableEntity - 422: 请求参数格式错误.
	StatusUnprocessableEntity = 422
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTokenExpired - 401: 令牌已过期.
	ErrTokenExpired
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 邮箱或密码错误.
	ErrUserPasswordIncorrect
	// ErrUserEmailInvalid - 422: 邮箱格式错误.
	ErrUserEmailInvalid
	// ErrUserPasswordTooShort - 422: 密码长度不足.
	ErrUserPasswordTooShort
)

// 报修工单相关错误码 (102xxx).
const (
	// ErrIssueNotFound - 404: 工单不存在.
	ErrIssueNotFound int = iota + 102000
	// ErrIssueAlreadyTaken - 409: 工单已被领取.
	ErrIssueAlreadyTaken
	// ErrIssueNoStaffRecord - 400: 用户没有关联的员工记录.
	ErrIssueNoStaffRecord
	// ErrIssueStatusInvalid - 400: 工单状态不合法.
	ErrIssueStatusInvalid
)

// 公告相关错误码 (103xxx).
const (
	// ErrNoticeNotFound - 404: 公告不存在.
	ErrNoticeNotFound int = iota + 103000
)

// 员工相关错误码 (104xxx).
const (
	// ErrStaffNotFound - 404: 员工不存在.
	ErrStaffNotFound int = iota + 104000
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
