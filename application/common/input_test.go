package common

import (
	"strings"
	"testing"

	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name         string   `json:"name" validate:"required,max=10"`
	CategoriesID []string `json:"categories_id" validate:"required,min=1,dive,required"`
	Nickname     *string  `json:"nickname" validate:"omitempty,max=3"`
}

// TestValidateInput 错误 key 使用 json 字段名
func TestValidateInput(t *testing.T) {
	nickname := "toolong"
	err := ValidateInput(sampleInput{Name: strings.Repeat("x", 11), CategoriesID: []string{}, Nickname: &nickname})
	require.Error(t, err)

	var validationErr *shared.EntityValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []shared.FieldErrors{
		{"name": {"name must be shorter than or equal to 10 characters"}},
		{"categories_id": {"categories_id must contain at least 1 elements"}},
		{"nickname": {"nickname must be shorter than or equal to 3 characters"}},
	}, validationErr.Errors())
}

func TestValidateInput_DiveStripsIndex(t *testing.T) {
	err := ValidateInput(sampleInput{Name: "ok", CategoriesID: []string{"a", ""}})

	var validationErr *shared.EntityValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"categories_id"}, validationErr.Fields())
}

func TestValidateInput_Valid(t *testing.T) {
	assert.NoError(t, ValidateInput(sampleInput{Name: "ok", CategoriesID: []string{"a"}}))
}

func TestNewPaginationOutput(t *testing.T) {
	result := shared.NewSearchResult([]int{1, 2}, 5, 1, 2)
	out := NewPaginationOutput([]string{"1", "2"}, result)

	assert.Equal(t, PaginationOutput[string]{
		Items: []string{"1", "2"}, Total: 5, CurrentPage: 1, LastPage: 3, PerPage: 2,
	}, out)

	empty := NewPaginationOutput[string](nil, shared.NewSearchResult[int](nil, 0, 1, 15))
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.LastPage)
}
