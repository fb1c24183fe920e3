/*
Package shared - 领域层共享错误定义

设计原则:
1. 领域层定义哨兵错误(sentinel errors)，用于 errors.Is() 类型安全判断
2. 每种错误在创建时捕获堆栈，但延迟格式化（按需打印）
3. 领域错误不包含 HTTP 状态码、退出码等传输层概念

堆栈捕获策略:
- 捕获时机：错误创建时（构造函数内）
- 格式化时机：日志打印时（Stack() 方法）
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ============================================================================
// 哨兵错误 (Sentinel Errors)
// 用于 errors.Is() 判断错误类型，不携带具体信息
// ============================================================================

var (
	// ErrNotFound 聚合未找到
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument 调用方传入了不合法的参数（如空 id 列表）
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidIdentifier 标识不是合法的 UUID
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrEntityValidation 聚合校验失败（携带字段错误列表）
	ErrEntityValidation = errors.New("entity validation")

	// ErrSearchValidation 搜索过滤条件自身不合法（如枚举值非法）
	ErrSearchValidation = errors.New("search validation")

	// ErrLoadEntity 持久化的数据无法重建为合法聚合
	ErrLoadEntity = errors.New("load entity")

	// ErrConflict 资源冲突（唯一约束冲突）
	ErrConflict = errors.New("conflict")
)

// ============================================================================
// 堆栈捕获辅助函数
// ============================================================================

// CaptureStack 捕获当前调用栈（导出供子领域包使用）
// skip: 跳过的帧数（通常为 3：Callers, CaptureStack, NewXxxError）
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack 格式化堆栈帧为字符串切片（导出供子领域包使用）
// 过滤 runtime 内部帧，最多返回 10 帧
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// Stacker 可提供堆栈的错误接口
// 用于 CLI / 日志层统一提取堆栈
type Stacker interface {
	Stack() []string
}

// FieldErrors 单个字段的错误信息：{"name": ["name should not be empty"]}
// 序列化后与 Notification 的输出格式一致
type FieldErrors map[string][]string

// ============================================================================
// NotFoundError
// ============================================================================

// NotFoundError 按 id 查找聚合失败
type NotFoundError struct {
	EntityName string
	IDs        []string
	stack      []uintptr
}

// NewNotFoundError 消息格式固定为 "<Entity> Not Found using ID <id>"，多个 id 用 ", " 连接
func NewNotFoundError(entityName string, ids ...string) *NotFoundError {
	return &NotFoundError{
		EntityName: entityName,
		IDs:        ids,
		stack:      CaptureStack(3),
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s Not Found using ID %s", e.EntityName, strings.Join(e.IDs, ", "))
}

func (e *NotFoundError) Unwrap() error   { return ErrNotFound }
func (e *NotFoundError) Stack() []string { return FormatStack(e.stack) }

// ============================================================================
// ConflictError
// ============================================================================

// ConflictError 写入时违反唯一约束，Cause 保留数据库驱动的原始错误
type ConflictError struct {
	EntityName string
	ID         string
	Cause      error
	stack      []uintptr
}

func NewConflictError(entityName, id string, cause error) *ConflictError {
	return &ConflictError{EntityName: entityName, ID: id, Cause: cause, stack: CaptureStack(3)}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with ID %s already exists", e.EntityName, e.ID)
}

func (e *ConflictError) Unwrap() []error { return []error{ErrConflict, e.Cause} }
func (e *ConflictError) Stack() []string { return FormatStack(e.stack) }

// ============================================================================
// InvalidArgumentError
// ============================================================================

type InvalidArgumentError struct {
	Message string
	stack   []uintptr
}

func NewInvalidArgumentError(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message, stack: CaptureStack(3)}
}

func (e *InvalidArgumentError) Error() string   { return e.Message }
func (e *InvalidArgumentError) Unwrap() error   { return ErrInvalidArgument }
func (e *InvalidArgumentError) Stack() []string { return FormatStack(e.stack) }

// ============================================================================
// InvalidIdentifierError
// ============================================================================

type InvalidIdentifierError struct {
	ID    string
	stack []uintptr
}

func NewInvalidIdentifierError(id string) *InvalidIdentifierError {
	return &InvalidIdentifierError{ID: id, stack: CaptureStack(3)}
}

func (e *InvalidIdentifierError) Error() string   { return "ID must be a valid UUID" }
func (e *InvalidIdentifierError) Unwrap() error   { return ErrInvalidIdentifier }
func (e *InvalidIdentifierError) Stack() []string { return FormatStack(e.stack) }

// ============================================================================
// 字段级校验错误：EntityValidationError / SearchValidationError / LoadEntityError
// 三者结构相同，区别在于语义（写入 / 查询 / 重建）
// ============================================================================

type fieldsError struct {
	sentinel error
	message  string
	errors   []FieldErrors
	stack    []uintptr
}

func (e *fieldsError) Error() string         { return e.message }
func (e *fieldsError) Unwrap() error         { return e.sentinel }
func (e *fieldsError) Stack() []string       { return FormatStack(e.stack) }
func (e *fieldsError) Errors() []FieldErrors { return e.errors }
func (e *fieldsError) Count() int            { return len(e.errors) }

// Fields 返回出错的字段名（按出现顺序）
func (e *fieldsError) Fields() []string {
	fields := make([]string, 0, len(e.errors))
	for _, fe := range e.errors {
		for k := range fe {
			fields = append(fields, k)
		}
	}
	return fields
}

// Messages 返回某个字段的全部错误信息
func (e *fieldsError) Messages(field string) []string {
	var out []string
	for _, fe := range e.errors {
		out = append(out, fe[field]...)
	}
	return out
}

// EntityValidationError 聚合校验失败
type EntityValidationError struct{ fieldsError }

func NewEntityValidationError(errs []FieldErrors) *EntityValidationError {
	return &EntityValidationError{fieldsError{
		sentinel: ErrEntityValidation,
		message:  "Entity Validation Error",
		errors:   errs,
		stack:    CaptureStack(3),
	}}
}

// SearchValidationError 搜索过滤值无法构造（如非法的枚举值）
type SearchValidationError struct{ fieldsError }

func NewSearchValidationError(errs []FieldErrors) *SearchValidationError {
	return &SearchValidationError{fieldsError{
		sentinel: ErrSearchValidation,
		message:  "Search Validation Error",
		errors:   errs,
		stack:    CaptureStack(3),
	}}
}

// LoadEntityError 数据库中的记录无法通过聚合校验
type LoadEntityError struct{ fieldsError }

func NewLoadEntityError(errs []FieldErrors) *LoadEntityError {
	return &LoadEntityError{fieldsError{
		sentinel: ErrLoadEntity,
		message:  "LoadEntityError",
		errors:   errs,
		stack:    CaptureStack(3),
	}}
}
