package errors

import (
	"errors"
	"fmt"

	"catalog/domain/shared"
)

// ErrorCode 错误码
type ErrorCode string

const (
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidation       ErrorCode = "VALIDATION_ERROR"
	CodeSearchValidation ErrorCode = "SEARCH_VALIDATION_ERROR"
	CodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"
	CodeInvalidID        ErrorCode = "INVALID_IDENTIFIER"
)

// AppError 应用错误
// Details 携带字段级错误（校验类错误），CLI 直接序列化输出
type AppError struct {
	Code    ErrorCode            `json:"code"`
	Message string               `json:"message"`
	Details []shared.FieldErrors `json:"details,omitempty"`
	Err     error                `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ExitCode 返回 CLI 退出码
func (e *AppError) ExitCode() int {
	switch e.Code {
	case CodeValidation, CodeSearchValidation, CodeInvalidArgument, CodeInvalidID:
		return 2
	case CodeNotFound:
		return 3
	case CodeConflict:
		return 4
	default:
		return 1
	}
}

// New 创建新错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func InvalidArgument(message string) *AppError {
	return New(CodeInvalidArgument, message)
}

// Is 检查是否为特定错误码
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// detailer 字段级校验错误的公共方法集
type detailer interface {
	Errors() []shared.FieldErrors
}

// FromDomainError 将领域错误映射为应用错误
// 按哨兵错误判断（errors.Is），不依赖错误信息文本
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var details []shared.FieldErrors
	var d detailer
	if errors.As(err, &d) {
		details = d.Errors()
	}

	switch {
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeNotFound, err.Error())
	case errors.Is(err, shared.ErrConflict):
		return Wrap(err, CodeConflict, err.Error())
	case errors.Is(err, shared.ErrEntityValidation):
		return &AppError{Code: CodeValidation, Message: err.Error(), Details: details, Err: err}
	case errors.Is(err, shared.ErrSearchValidation):
		return &AppError{Code: CodeSearchValidation, Message: err.Error(), Details: details, Err: err}
	case errors.Is(err, shared.ErrInvalidIdentifier):
		return Wrap(err, CodeInvalidID, err.Error())
	case errors.Is(err, shared.ErrInvalidArgument):
		return Wrap(err, CodeInvalidArgument, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal error")
	}
}

// ExitCode err 为 nil 时返回 0
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return FromDomainError(err).ExitCode()
}
