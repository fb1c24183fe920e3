package shared

import (
	"context"
	"strings"
)

// Specification defines the interface for domain specifications
// A specification encapsulates business rules for querying entities
// 内存仓储用 IsSatisfiedBy 过滤；ORM 仓储把具体的 specification 翻译成 SQL 条件
type Specification[T any] interface {
	IsSatisfiedBy(ctx context.Context, entity T) bool
}

// ============================================================================
// Composite Specifications
// ============================================================================

// AndSpecification represents the logical AND of two specifications
type AndSpecification[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

func (spec AndSpecification[T]) IsSatisfiedBy(ctx context.Context, entity T) bool {
	return spec.Left.IsSatisfiedBy(ctx, entity) && spec.Right.IsSatisfiedBy(ctx, entity)
}

// And creates a new AndSpecification
func And[T any](left, right Specification[T]) Specification[T] {
	return AndSpecification[T]{Left: left, Right: right}
}

// AllOf 把多个条件用 AND 组合；nil 条件被跳过，全部为 nil 时返回 nil
func AllOf[T any](specs ...Specification[T]) Specification[T] {
	var result Specification[T]
	for _, s := range specs {
		if s == nil {
			continue
		}
		if result == nil {
			result = s
			continue
		}
		result = And(result, s)
	}
	return result
}

// OrSpecification represents the logical OR of two specifications
type OrSpecification[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

func (spec OrSpecification[T]) IsSatisfiedBy(ctx context.Context, entity T) bool {
	return spec.Left.IsSatisfiedBy(ctx, entity) || spec.Right.IsSatisfiedBy(ctx, entity)
}

// Or creates a new OrSpecification
func Or[T any](left, right Specification[T]) Specification[T] {
	return OrSpecification[T]{Left: left, Right: right}
}

// NotSpecification represents the logical NOT of a specification
type NotSpecification[T any] struct {
	Spec Specification[T]
}

func (spec NotSpecification[T]) IsSatisfiedBy(ctx context.Context, entity T) bool {
	return !spec.Spec.IsSatisfiedBy(ctx, entity)
}

// Not creates a new NotSpecification
func Not[T any](inner Specification[T]) Specification[T] {
	return NotSpecification[T]{Spec: inner}
}

// ContainsFold 大小写不敏感的子串匹配，只折叠 ASCII 字母；非 ASCII 字符按字节比较，
// 与 SQL 端的折叠表达式保持一致
func ContainsFold(s, substr string) bool {
	return strings.Contains(FoldASCII(s), FoldASCII(substr))
}

// FoldASCII 把 A-Z 转为小写，其余字节原样保留（不做 Unicode 大小写映射）
func FoldASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
