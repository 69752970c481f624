package domain

import (
	"errors"
	"net/http"
)

// ErrorKind 區分錯誤來源，讓呼叫端不必比對錯誤字串就能分支處理
type ErrorKind int

const (
	// KindRemote 下游服務回應了非 2xx
	KindRemote ErrorKind = iota + 1
	// KindUnavailable 下游無法連線或回應無法解析
	KindUnavailable
	// KindValidation 請求缺少必要資訊
	KindValidation
	// KindIdentity accesstoken 缺少、無效或過期
	KindIdentity
)

func (k ErrorKind) String() string {
	switch k {
	case KindRemote:
		return "remote"
	case KindUnavailable:
		return "unavailable"
	case KindValidation:
		return "validation"
	case KindIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

const (
	// DefaultErrorMessage 下游未提供 message 時使用
	DefaultErrorMessage = "An error occurred"
	// InternalErrorMessage 下游無回應時使用
	InternalErrorMessage = "Internal Server Error"
)

// Error 是 Gateway 對外唯一的錯誤形狀 {status, message}
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewRemoteError 建立下游回應錯誤，缺少的欄位套用預設值
func NewRemoteError(status int, message string) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if message == "" {
		message = DefaultErrorMessage
	}
	return &Error{Kind: KindRemote, Status: status, Message: message}
}

// NewUnavailableError 建立下游無法連線的錯誤 (固定 500)
func NewUnavailableError() *Error {
	return &Error{Kind: KindUnavailable, Status: http.StatusInternalServerError, Message: InternalErrorMessage}
}

// NewValidationError 建立請求資訊不足的錯誤
func NewValidationError(status int, message string) *Error {
	return &Error{Kind: KindValidation, Status: status, Message: message}
}

// NewIdentityError 建立 Token 解碼失敗的錯誤
func NewIdentityError(status int, message string) *Error {
	return &Error{Kind: KindIdentity, Status: status, Message: message}
}

// AsError 將任意 error 轉成 *Error
// 非 *Error 的錯誤一律視為 500 DefaultErrorMessage，不對外暴露內部訊息。
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindUnavailable, Status: http.StatusInternalServerError, Message: DefaultErrorMessage}
}

// IsKind 判斷 err 是否為指定類型的 *Error
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsNotFound 判斷是否為下游 404
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindRemote && e.Status == http.StatusNotFound
}
