package genre

import (
	"context"
	"testing"

	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
	"catalog/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc        *ApplicationService
	categories *memory.CategoryRepository
	events     *memory.EventLog
}

func newFixture(t *testing.T, categoryNames ...string) (*fixture, []*category.Category) {
	t.Helper()
	categoryRepo := memory.NewCategoryRepository()
	genreRepo := memory.NewGenreRepository()
	factory := memory.NewUnitOfWorkFactory(nil, categoryRepo, genreRepo)

	categories := make([]*category.Category, len(categoryNames))
	for i, name := range categoryNames {
		categories[i] = category.NewCategory(category.Props{Name: name})
	}
	require.NoError(t, categoryRepo.BulkInsert(context.Background(), categories))

	return &fixture{
		svc:        NewApplicationService(genreRepo, categoryRepo, factory),
		categories: categoryRepo,
		events:     factory.EventLog(),
	}, categories
}

func ptr[T any](v T) *T { return &v }

// TestApplicationService_Create 输出中按关联顺序内嵌分类
func TestApplicationService_Create(t *testing.T) {
	f, categories := newFixture(t, "Movie", "Series")

	out, err := f.svc.Create(context.Background(), CreateGenreInput{
		Name:         "Action",
		CategoriesID: []string{categories[1].ID().String(), categories[0].ID().String()},
	})
	require.NoError(t, err)
	assert.Equal(t, "Action", out.Name)
	assert.True(t, out.IsActive)
	assert.Equal(t, []string{categories[1].ID().String(), categories[0].ID().String()}, out.CategoriesID)
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Series", out.Categories[0].Name)
	assert.Equal(t, "Movie", out.Categories[1].Name)

	events := f.events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "genre.created", events[0].EventName())
}

// TestApplicationService_CreateMissingCategories 缺失的分类折叠到 categories_id
func TestApplicationService_CreateMissingCategories(t *testing.T) {
	f, categories := newFixture(t, "Movie")
	missing := category.NewCategoryID()

	_, err := f.svc.Create(context.Background(), CreateGenreInput{
		Name:         "",
		CategoriesID: []string{categories[0].ID().String(), missing.String()},
	})

	var validationErr *shared.EntityValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []shared.FieldErrors{
		{"name": {"name should not be empty"}},
		{"categories_id": {"Category Not Found using ID " + missing.String()}},
	}, validationErr.Errors())
	assert.Empty(t, f.events.Events())
}

func TestApplicationService_CreateInput(t *testing.T) {
	f, _ := newFixture(t)

	_, err := f.svc.Create(context.Background(), CreateGenreInput{Name: "Action", CategoriesID: []string{}})
	var validationErr *shared.EntityValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"categories_id must contain at least 1 elements"}, validationErr.Messages("categories_id"))

	_, err = f.svc.Create(context.Background(), CreateGenreInput{Name: "Action", CategoriesID: []string{"fake"}})
	assert.ErrorIs(t, err, shared.ErrInvalidIdentifier)
}

func TestApplicationService_Update(t *testing.T) {
	ctx := context.Background()
	f, categories := newFixture(t, "Movie", "Series", "Documentary")
	created, err := f.svc.Create(ctx, CreateGenreInput{
		Name:         "Action",
		CategoriesID: []string{categories[0].ID().String(), categories[1].ID().String()},
	})
	require.NoError(t, err)

	out, err := f.svc.Update(ctx, UpdateGenreInput{
		ID:           created.ID,
		CategoriesID: []string{categories[2].ID().String()},
		IsActive:     ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Action", out.Name)
	assert.False(t, out.IsActive)
	assert.Equal(t, []string{categories[2].ID().String()}, out.CategoriesID)

	// 校验失败时关联保持不变
	missing := category.NewCategoryID()
	_, err = f.svc.Update(ctx, UpdateGenreInput{ID: created.ID, CategoriesID: []string{missing.String()}})
	assert.ErrorIs(t, err, shared.ErrEntityValidation)

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{categories[2].ID().String()}, got.CategoriesID)

	out, err = f.svc.Update(ctx, UpdateGenreInput{ID: created.ID, Name: ptr("Adventure")})
	require.NoError(t, err)
	assert.Equal(t, "Adventure", out.Name)
	assert.Equal(t, []string{categories[2].ID().String()}, out.CategoriesID)
}

func TestApplicationService_DeleteMissing(t *testing.T) {
	f, _ := newFixture(t)
	id := genre.NewGenreID().String()

	err := f.svc.Delete(context.Background(), id)
	assert.EqualError(t, err, "Genre Not Found using ID "+id)
}

// TestApplicationService_List 已删除的分类不出现在 categories 中，但 id 保留
func TestApplicationService_List(t *testing.T) {
	ctx := context.Background()
	f, categories := newFixture(t, "Movie", "Series")
	for _, name := range []string{"Action", "Drama"} {
		_, err := f.svc.Create(ctx, CreateGenreInput{
			Name:         name,
			CategoriesID: []string{categories[0].ID().String(), categories[1].ID().String()},
		})
		require.NoError(t, err)
	}
	require.NoError(t, f.categories.Delete(ctx, categories[0].ID()))

	out, err := f.svc.List(ctx, ListGenresInput{
		SearchInput: shared.SearchInput{Sort: "name", SortDir: "desc"},
		Filter:      &genre.FilterInput{CategoriesID: []string{categories[1].ID().String()}},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Drama", out.Items[0].Name)
	assert.Len(t, out.Items[0].CategoriesID, 2)
	require.Len(t, out.Items[0].Categories, 1)
	assert.Equal(t, "Series", out.Items[0].Categories[0].Name)

	_, err = f.svc.List(ctx, ListGenresInput{Filter: &genre.FilterInput{CategoriesID: []string{"fake"}}})
	assert.ErrorIs(t, err, shared.ErrSearchValidation)
}
