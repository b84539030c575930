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
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
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
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
	// ErrForbidden - 403: 已认证但无权访问该资源.
	ErrForbidden
)

// 账号相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户密码错误.
	ErrUserPasswordIncorrect
	// ErrUserNoResident - 400: 账号未关联居民.
	ErrUserNoResident
)

// 楼栋相关错误码 (102xxx).
const (
	// ErrBuildingNotFound - 404: 楼栋不存在.
	ErrBuildingNotFound int = iota + 102000
	// ErrBuildingAlreadyExist - 400: 楼栋已存在.
	ErrBuildingAlreadyExist
)

// 公寓与居民相关错误码 (103xxx).
const (
	// ErrApartmentNotFound - 404: 公寓不存在.
	ErrApartmentNotFound int = iota + 103000
	// ErrApartmentAlreadyExist - 400: 公寓已存在.
	ErrApartmentAlreadyExist
	// ErrResidentNotFound - 404: 居民不存在.
	ErrResidentNotFound
	// ErrResidentAlreadyExist - 400: 居民已存在.
	ErrResidentAlreadyExist
	// ErrHouseholdHeadConflict - 400: 公寓已有户主.
	ErrHouseholdHeadConflict
)

// 储物柜相关错误码 (104xxx).
const (
	// ErrLockerNotFound - 404: 储物柜不存在.
	ErrLockerNotFound int = iota + 104000
	// ErrLockerAlreadyExist - 400: 居民已有储物柜.
	ErrLockerAlreadyExist
	// ErrItemNotFound - 404: 包裹不存在.
	ErrItemNotFound
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)

// 访客与停车卡相关错误码 (106xxx).
const (
	// ErrVisitorNotFound - 404: 访客不存在.
	ErrVisitorNotFound int = iota + 106000
	// ErrVisitorAlreadyExist - 400: 访客已存在.
	ErrVisitorAlreadyExist
	// ErrParkingCardNotFound - 404: 停车卡不存在.
	ErrParkingCardNotFound
	// ErrParkingCardAlreadyExist - 400: 停车卡已存在.
	ErrParkingCardAlreadyExist
	// ErrParkingCardOwner - 400: 停车卡所属人不合法.
	ErrParkingCardOwner
)

// 费用相关错误码 (107xxx).
const (
	// ErrFeeTypeNotFound - 404: 费用类别不存在.
	ErrFeeTypeNotFound int = iota + 107000
	// ErrInvoiceNotFound - 404: 账单不存在.
	ErrInvoiceNotFound
	// ErrInvoiceAlreadyPaid - 404: 账单已缴清，不在可缴费范围内.
	ErrInvoiceAlreadyPaid
	// ErrPaymentNotFound - 404: 缴费记录不存在.
	ErrPaymentNotFound
	// ErrPaymentStatusInvalid - 400: 缴费状态不合法.
	ErrPaymentStatusInvalid
)

// 投诉相关错误码 (108xxx).
const (
	// ErrComplaintNotFound - 404: 投诉不存在.
	ErrComplaintNotFound int = iota + 108000
	// ErrResponderNotStaff - 403: 回复人不是管理人员.
	ErrResponderNotStaff
)

// 问卷相关错误码 (109xxx).
const (
	// ErrSurveyNotFound - 404: 问卷不存在.
	ErrSurveyNotFound int = iota + 109000
	// ErrQuestionNotFound - 404: 问题不存在.
	ErrQuestionNotFound
	// ErrChoiceInvalid - 400: 选项不存在或不属于对应问题.
	ErrChoiceInvalid
	// ErrSurveyResponseNotFound - 404: 答卷不存在.
	ErrSurveyResponseNotFound
)
