package castmember

import (
	"fmt"

	"catalog/domain/shared"
)

// CastMemberType 演职人员类型值对象
type CastMemberType int

const (
	Director CastMemberType = 1
	Actor    CastMemberType = 2
)

// InvalidCastMemberTypeError 非法的类型值
type InvalidCastMemberTypeError struct {
	Value any
}

func (e *InvalidCastMemberTypeError) Error() string {
	return fmt.Sprintf("Invalid cast member type: %v", e.Value)
}

// NewCastMemberType 校验类型值，失败时返回 Either 的失败分支而不是 panic
func NewCastMemberType(value int) shared.Either[CastMemberType, error] {
	t := CastMemberType(value)
	if !t.IsValid() {
		return shared.Fail[CastMemberType, error](&InvalidCastMemberTypeError{Value: value})
	}
	return shared.Ok[CastMemberType, error](t)
}

func (t CastMemberType) IsValid() bool {
	return t == Director || t == Actor
}

func (t CastMemberType) Int() int { return int(t) }

func (t CastMemberType) String() string {
	switch t {
	case Director:
		return "director"
	case Actor:
		return "actor"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

func (t CastMemberType) Equals(other interface{}) bool {
	o, ok := other.(CastMemberType)
	return ok && o == t
}

var _ shared.ValueObject = Director
