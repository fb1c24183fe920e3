package genre

import (
	"context"
	"testing"
	"time"

	"catalog/domain/category"
	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGenre 测试创建类型时分类 id 去重并保持顺序
func TestNewGenre(t *testing.T) {
	c1, c2 := category.NewCategoryID(), category.NewCategoryID()
	g := NewGenre(Props{Name: "Action", CategoriesID: []category.CategoryID{c1, c2, c1}})

	assert.False(t, g.Notification().HasErrors())
	assert.True(t, g.IsActive())
	assert.Equal(t, []category.CategoryID{c1, c2}, g.CategoriesID())

	events := g.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "genre.created", events[0].EventName())
	assert.Equal(t, []string{c1.String(), c2.String()}, events[0].Payload()["categories_id"])
}

func TestGenre_CategoryRelations(t *testing.T) {
	c1, c2, c3 := category.NewCategoryID(), category.NewCategoryID(), category.NewCategoryID()
	g := NewGenre(Props{Name: "Action", CategoriesID: []category.CategoryID{c1}})

	g.AddCategoryID(c2)
	g.AddCategoryID(c2)
	assert.Equal(t, []category.CategoryID{c1, c2}, g.CategoriesID())

	g.RemoveCategoryID(c3)
	g.RemoveCategoryID(c1)
	assert.Equal(t, []category.CategoryID{c2}, g.CategoriesID())

	require.NoError(t, g.SyncCategoriesID([]category.CategoryID{c3}))
	assert.Equal(t, []category.CategoryID{c3}, g.CategoriesID())
	assert.False(t, g.HasCategory(c2))

	assert.Error(t, g.SyncCategoriesID(nil))
	assert.Equal(t, []category.CategoryID{c3}, g.CategoriesID())
}

func TestGenre_ChangeName(t *testing.T) {
	g := NewGenre(Props{Name: "Action"})
	g.ChangeName("")
	assert.Equal(t, []shared.FieldErrors{{"name": {"name should not be empty"}}}, g.Notification().Errors())
}

func TestRebuildFromDTO(t *testing.T) {
	id := NewGenreID()
	c1 := category.NewCategoryID()

	g, err := RebuildFromDTO(ReconstructionDTO{
		ID:           id.String(),
		Name:         "Drama",
		CategoriesID: []string{c1.String()},
		IsActive:     false,
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, g.IsActive())
	assert.Equal(t, []category.CategoryID{c1}, g.CategoriesID())

	_, err = RebuildFromDTO(ReconstructionDTO{ID: id.String(), CategoriesID: []string{"bad"}})
	assert.ErrorIs(t, err, shared.ErrInvalidIdentifier)

	_, err = RebuildFromDTO(ReconstructionDTO{ID: id.String()})
	assert.ErrorIs(t, err, shared.ErrLoadEntity)
}

func TestNewSearchParams(t *testing.T) {
	c1 := category.NewCategoryID()

	p, err := NewSearchParams(shared.SearchInput{}, &FilterInput{Name: " ", CategoriesID: []string{}})
	require.NoError(t, err)
	assert.False(t, p.HasFilter())

	p, err = NewSearchParams(shared.SearchInput{}, &FilterInput{CategoriesID: []string{c1.String()}})
	require.NoError(t, err)
	f, ok := p.Filter()
	require.True(t, ok)
	assert.Equal(t, []category.CategoryID{c1}, f.CategoriesID)

	_, err = NewSearchParams(shared.SearchInput{}, &FilterInput{CategoriesID: []string{"fake"}})
	var searchErr *shared.SearchValidationError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, []string{"categories_id"}, searchErr.Fields())
}

func TestFilter_Specification(t *testing.T) {
	ctx := context.Background()
	c1, c2 := category.NewCategoryID(), category.NewCategoryID()
	action := NewGenre(Props{Name: "Action", CategoriesID: []category.CategoryID{c1}})
	drama := NewGenre(Props{Name: "Drama", CategoriesID: []category.CategoryID{c2}})

	spec := Filter{Name: "a", CategoriesID: []category.CategoryID{c2}}.Specification()
	assert.False(t, spec.IsSatisfiedBy(ctx, action))
	assert.True(t, spec.IsSatisfiedBy(ctx, drama))
}

func TestGenre_Equals(t *testing.T) {
	g := NewGenre(Props{Name: "Action", CategoriesID: []category.CategoryID{category.NewCategoryID()}})

	assert.True(t, g.Equals(g.Clone()))
	assert.False(t, g.Equals(NewGenre(Props{Name: "Action"})))
	assert.False(t, g.Equals((*Genre)(nil)))
	assert.False(t, g.Equals(nil))
}
