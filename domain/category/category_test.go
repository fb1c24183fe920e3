package category

import (
	"context"
	"strings"
	"testing"
	"time"

	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCategory 测试创建分类的默认值与事件
func TestNewCategory(t *testing.T) {
	description := "some description"
	c := NewCategory(Props{Name: "Movie", Description: &description})

	assert.False(t, c.Notification().HasErrors())
	assert.False(t, c.ID().IsZero())
	assert.Equal(t, "Movie", c.Name())
	assert.Equal(t, &description, c.Description())
	assert.True(t, c.IsActive())
	assert.WithinDuration(t, time.Now(), c.CreatedAt(), time.Minute)

	events := c.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "category.created", events[0].EventName())
	assert.Equal(t, c.ID().String(), events[0].GetAggregateID())
	assert.Equal(t, "Movie", events[0].Payload()["name"])
	assert.NoError(t, shared.ValidateEvent(events[0]))
}

func TestNewCategory_Inactive(t *testing.T) {
	inactive := false
	c := NewCategory(Props{Name: "Movie", IsActive: &inactive})
	assert.False(t, c.IsActive())

	c.Activate()
	assert.True(t, c.IsActive())
	c.Deactivate()
	assert.False(t, c.IsActive())
}

// TestNewCategory_Validation 校验错误写入 Notification 而不是立即返回
func TestNewCategory_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "name should not be empty"},
		{"too long", strings.Repeat("a", 256), "name must be shorter than or equal to 255 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCategory(Props{Name: tt.in})
			assert.Equal(t, []shared.FieldErrors{{"name": {tt.want}}}, c.Notification().Errors())
		})
	}
}

func TestCategory_ChangeName(t *testing.T) {
	c := NewCategory(Props{Name: "Movie"})

	c.ChangeName("Documentary")
	assert.Equal(t, "Documentary", c.Name())
	assert.False(t, c.Notification().HasErrors())

	c.ChangeName("")
	assert.True(t, c.Notification().HasFieldErrors("name"))
}

func TestCategory_Equals(t *testing.T) {
	id := NewCategoryID()
	a := NewCategory(Props{ID: &id, Name: "a"})
	b := NewCategory(Props{ID: &id, Name: "b"})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(NewCategory(Props{Name: "a"})))
	assert.False(t, a.Equals(nil))
}

func TestRebuildFromDTO(t *testing.T) {
	id := NewCategoryID()
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	c, err := RebuildFromDTO(ReconstructionDTO{ID: id.String(), Name: "Movie", IsActive: false, CreatedAt: createdAt})
	require.NoError(t, err)
	assert.Equal(t, id, c.ID())
	assert.False(t, c.IsActive())
	assert.Equal(t, createdAt, c.CreatedAt())
	assert.Empty(t, c.PullEvents())

	_, err = RebuildFromDTO(ReconstructionDTO{ID: id.String(), Name: ""})
	assert.ErrorIs(t, err, shared.ErrLoadEntity)

	_, err = RebuildFromDTO(ReconstructionDTO{ID: "bad"})
	assert.ErrorIs(t, err, shared.ErrInvalidIdentifier)
}

func TestNewSearchParams(t *testing.T) {
	p := NewSearchParams(shared.SearchInput{}, "   ")
	assert.False(t, p.HasFilter())

	p = NewSearchParams(shared.SearchInput{}, "mov")
	f, ok := p.Filter()
	require.True(t, ok)
	assert.Equal(t, Filter("mov"), f)

	spec := f.Specification()
	assert.True(t, spec.IsSatisfiedBy(context.Background(), NewCategory(Props{Name: "MOVIE"})))
	assert.False(t, spec.IsSatisfiedBy(context.Background(), NewCategory(Props{Name: "Series"})))
}
