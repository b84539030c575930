package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTokenInvalid:    "无效的认证令牌",
	ErrTooManyRequests: "请求频率过高",
	ErrForbidden:       "没有权限访问该资源",

	// 账号相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "用户已存在",
	ErrUserPasswordIncorrect: "用户密码错误",
	ErrUserNoResident:        "当前账号未关联任何居民",

	// 楼栋相关错误码
	ErrBuildingNotFound:     "楼栋不存在",
	ErrBuildingAlreadyExist: "楼栋已存在",

	// 公寓与居民相关错误码
	ErrApartmentNotFound:     "公寓不存在",
	ErrApartmentAlreadyExist: "该楼栋下已存在相同编号的公寓",
	ErrResidentNotFound:      "居民不存在",
	ErrResidentAlreadyExist:  "居民已存在",
	ErrHouseholdHeadConflict: "该公寓已有户主",

	// 储物柜相关错误码
	ErrLockerNotFound:     "储物柜不存在",
	ErrLockerAlreadyExist: "该居民已有储物柜",
	ErrItemNotFound:       "包裹不存在",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",

	// 访客与停车卡相关错误码
	ErrVisitorNotFound:         "访客不存在",
	ErrVisitorAlreadyExist:     "访客已存在",
	ErrParkingCardNotFound:     "停车卡不存在",
	ErrParkingCardAlreadyExist: "停车卡卡号已存在",
	ErrParkingCardOwner:        "停车卡所属人不合法",

	// 费用相关错误码
	ErrFeeTypeNotFound:      "费用类别不存在",
	ErrInvoiceNotFound:      "账单不存在",
	ErrInvoiceAlreadyPaid:   "账单已缴清",
	ErrPaymentNotFound:      "缴费记录不存在",
	ErrPaymentStatusInvalid: "缴费状态不合法",

	// 投诉相关错误码
	ErrComplaintNotFound: "投诉不存在",
	ErrResponderNotStaff: "只有管理人员可以回复投诉",

	// 问卷相关错误码
	ErrSurveyNotFound:         "问卷不存在",
	ErrQuestionNotFound:       "问题不存在",
	ErrChoiceInvalid:          "选项不存在或不属于对应问题",
	ErrSurveyResponseNotFound: "答卷不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrForbidden:       StatusForbidden,

	// 账号相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrUserNoResident:        StatusBadRequest,

	// 楼栋相关错误码
	ErrBuildingNotFound:     StatusNotFound,
	ErrBuildingAlreadyExist: StatusBadRequest,

	// 公寓与居民相关错误码
	ErrApartmentNotFound:     StatusNotFound,
	ErrApartmentAlreadyExist: StatusBadRequest,
	ErrResidentNotFound:      StatusNotFound,
	ErrResidentAlreadyExist:  StatusBadRequest,
	ErrHouseholdHeadConflict: StatusBadRequest,

	// 储物柜相关错误码
	ErrLockerNotFound:     StatusNotFound,
	ErrLockerAlreadyExist: StatusBadRequest,
	ErrItemNotFound:       StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// 访客与停车卡相关错误码
	ErrVisitorNotFound:         StatusNotFound,
	ErrVisitorAlreadyExist:     StatusBadRequest,
	ErrParkingCardNotFound:     StatusNotFound,
	ErrParkingCardAlreadyExist: StatusBadRequest,
	ErrParkingCardOwner:        StatusBadRequest,

	// 费用相关错误码
	ErrFeeTypeNotFound:      StatusNotFound,
	ErrInvoiceNotFound:      StatusNotFound,
	ErrInvoiceAlreadyPaid:   StatusNotFound,
	ErrPaymentNotFound:      StatusNotFound,
	ErrPaymentStatusInvalid: StatusBadRequest,

	// 投诉相关错误码
	ErrComplaintNotFound: StatusNotFound,
	ErrResponderNotStaff: StatusForbidden,

	// 问卷相关错误码
	ErrSurveyNotFound:         StatusNotFound,
	ErrQuestionNotFound:       StatusNotFound,
	ErrChoiceInvalid:          StatusBadRequest,
	ErrSurveyResponseNotFound: StatusNotFound,
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
