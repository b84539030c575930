package code

// CodedError 带错误码的业务错误，由服务层返回，控制器层映射为HTTP响应
type CodedError struct {
	Code    int
	Message string
}

// Error 实现error接口
func (e *CodedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return GetMessage(e.Code)
}

// NewError 根据错误码创建业务错误
func NewError(code int) *CodedError {
	return &CodedError{Code: code}
}

// NewErrorWithMessage 根据错误码和自定义消息创建业务错误
func NewErrorWithMessage(code int, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// CodeOf 提取错误对应的错误码，非业务错误归为未知错误
func CodeOf(err error) int {
	if err == nil {
		return ErrSuccess
	}
	if coded, ok := err.(*CodedError); ok {
		return coded.Code
	}
	return ErrUnknown
}
