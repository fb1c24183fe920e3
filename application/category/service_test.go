package category

import (
	"context"
	"testing"

	"catalog/domain/shared"
	"catalog/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*ApplicationService, *memory.UnitOfWorkFactory) {
	repo := memory.NewCategoryRepository()
	factory := memory.NewUnitOfWorkFactory(nil, repo)
	return NewApplicationService(repo, factory), factory
}

func ptr[T any](v T) *T { return &v }

// TestApplicationService_Create 测试创建分类
func TestApplicationService_Create(t *testing.T) {
	ctx := context.Background()
	svc, factory := newService()

	out, err := svc.Create(ctx, CreateCategoryInput{Name: "Movie", Description: ptr("desc")})
	require.NoError(t, err)
	assert.Equal(t, "Movie", out.Name)
	assert.Equal(t, "desc", *out.Description)
	assert.True(t, out.IsActive)

	events := factory.EventLog().Events()
	require.Len(t, events, 1)
	assert.Equal(t, out.ID, events[0].GetAggregateID())

	got, err := svc.Get(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestApplicationService_CreateValidation(t *testing.T) {
	svc, factory := newService()

	_, err := svc.Create(context.Background(), CreateCategoryInput{Name: ""})
	var validationErr *shared.EntityValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"name should not be empty"}, validationErr.Messages("name"))
	assert.Empty(t, factory.EventLog().Events())
}

func TestApplicationService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	created, err := svc.Create(ctx, CreateCategoryInput{Name: "Movie", Description: ptr("desc")})
	require.NoError(t, err)

	out, err := svc.Update(ctx, UpdateCategoryInput{ID: created.ID, IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Movie", out.Name)
	assert.Equal(t, "desc", *out.Description)
	assert.False(t, out.IsActive)

	out, err = svc.Update(ctx, UpdateCategoryInput{ID: created.ID, Name: ptr("Documentary"), Description: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "Documentary", out.Name)
	assert.Equal(t, "", *out.Description)

	_, err = svc.Update(ctx, UpdateCategoryInput{ID: created.ID, Name: ptr("")})
	assert.ErrorIs(t, err, shared.ErrEntityValidation)
}

func TestApplicationService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	id := shared.NewUuid().String()

	_, err := svc.Get(ctx, id)
	assert.EqualError(t, err, "Category Not Found using ID "+id)

	_, err = svc.Update(ctx, UpdateCategoryInput{ID: id, Name: ptr("x")})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = svc.Delete(ctx, id)
	assert.EqualError(t, err, "Category Not Found using ID "+id)

	_, err = svc.Get(ctx, "fake id")
	assert.ErrorIs(t, err, shared.ErrInvalidIdentifier)
}

func TestApplicationService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	created, err := svc.Create(ctx, CreateCategoryInput{Name: "Movie"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestApplicationService_List(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	for _, name := range []string{"Movie", "Series", "Documentary movie"} {
		_, err := svc.Create(ctx, CreateCategoryInput{Name: name})
		require.NoError(t, err)
	}

	out, err := svc.List(ctx, ListCategoriesInput{
		SearchInput: shared.SearchInput{Sort: "name", PerPage: "1"},
		Filter:      "MOVIE",
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Documentary movie", out.Items[0].Name)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 2, out.LastPage)
	assert.Equal(t, 1, out.PerPage)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
