package castmember

import (
	"time"

	"catalog/domain/castmember"
	"catalog/domain/shared"
)

type CreateCastMemberInput struct {
	Name string `json:"name" yaml:"name" validate:"required,max=255"`
	Type int    `json:"type" yaml:"type" validate:"required"`
}

// UpdateCastMemberInput nil 字段保持不变
type UpdateCastMemberInput struct {
	ID   string  `json:"id" validate:"required"`
	Name *string `json:"name" validate:"omitempty,max=255"`
	Type *int    `json:"type"`
}

type ListCastMembersInput struct {
	shared.SearchInput
	Filter *castmember.FilterInput `json:"filter" yaml:"filter"`
}

type CastMemberOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      int       `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
