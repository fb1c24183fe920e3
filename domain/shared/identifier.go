package shared

import "github.com/google/uuid"

// Identifier 聚合标识
type Identifier interface {
	String() string
}

// Uuid 值对象，各聚合的 typed id 通过嵌入它获得校验与相等性
type Uuid struct {
	id string
}

// NewUuid 生成新的 v4 UUID
func NewUuid() Uuid {
	return Uuid{id: uuid.NewString()}
}

// ParseUuid 校验并规范化（小写、带连字符）
func ParseUuid(id string) (Uuid, error) {
	if len(id) != 36 {
		return Uuid{}, NewInvalidIdentifierError(id)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Uuid{}, NewInvalidIdentifierError(id)
	}
	return Uuid{id: parsed.String()}, nil
}

func (u Uuid) String() string { return u.id }

// IsZero 未初始化的 id
func (u Uuid) IsZero() bool { return u.id == "" }

func (u Uuid) Equals(other interface{}) bool {
	switch o := other.(type) {
	case Uuid:
		return u.id == o.id
	case Identifier:
		return u.id == o.String()
	default:
		return false
	}
}

var _ ValueObject = Uuid{}
