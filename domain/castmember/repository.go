package castmember

import (
	"context"
	"math"
	"strings"

	"catalog/domain/shared"

	"github.com/spf13/cast"
)

// Filter 归一化后的过滤条件；零值字段表示不参与过滤
type Filter struct {
	Name string
	Type *CastMemberType
}

// FilterInput 原始过滤输入，Type 可以是数字或数字字符串
type FilterInput struct {
	Name string `json:"name" yaml:"name"`
	Type any    `json:"type" yaml:"type"`
}

type (
	SearchParams = shared.SearchParams[Filter]
	SearchResult = shared.SearchResult[*CastMember]
)

var SortableFields = []string{"name", "created_at"}

// NewSearchParams 归一化过滤条件：
//   - name 空白视为缺失
//   - type 为 nil 或空字符串视为缺失；其余值必须是 1 或 2，否则返回 SearchValidationError
//   - 两者都缺失时 filter 为 null
func NewSearchParams(in shared.SearchInput, input *FilterInput) (SearchParams, error) {
	if input == nil {
		return shared.NewSearchParams[Filter](in, nil), nil
	}

	var f Filter
	present := false
	if strings.TrimSpace(input.Name) != "" {
		f.Name = input.Name
		present = true
	}

	if !isBlank(input.Type) {
		t, err := coerceType(input.Type)
		if err != nil {
			return SearchParams{}, shared.NewSearchValidationError([]shared.FieldErrors{
				{"type": {err.Error()}},
			})
		}
		f.Type = &t
		present = true
	}

	if !present {
		return shared.NewSearchParams[Filter](in, nil), nil
	}
	return shared.NewSearchParams(in, &f), nil
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func coerceType(v any) (CastMemberType, error) {
	switch t := v.(type) {
	case CastMemberType:
		return NewCastMemberType(int(t)).AsArray()
	case bool:
		// cast 会把 true 转成 1
		return 0, &InvalidCastMemberTypeError{Value: v}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || f != math.Trunc(f) {
		return 0, &InvalidCastMemberTypeError{Value: v}
	}
	return NewCastMemberType(int(f)).AsArray()
}

// Specification name 与 type 同时存在时用 AND 组合
func (f Filter) Specification() shared.Specification[*CastMember] {
	var byName, byType shared.Specification[*CastMember]
	if f.Name != "" {
		byName = ByNameSpecification{Name: f.Name}
	}
	if f.Type != nil {
		byType = ByTypeSpecification{Type: *f.Type}
	}
	return shared.AllOf(byName, byType)
}

// Repository 演职人员仓储接口
type Repository interface {
	shared.SearchableRepository[*CastMember, CastMemberID, Filter]
}

type ByNameSpecification struct {
	Name string
}

func (spec ByNameSpecification) IsSatisfiedBy(ctx context.Context, entity *CastMember) bool {
	return shared.ContainsFold(entity.Name(), spec.Name)
}

type ByTypeSpecification struct {
	Type CastMemberType
}

func (spec ByTypeSpecification) IsSatisfiedBy(ctx context.Context, entity *CastMember) bool {
	return entity.Type() == spec.Type
}
