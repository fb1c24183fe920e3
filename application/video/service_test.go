package video

import (
	"context"
	"testing"

	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
	"catalog/domain/video"
	"catalog/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc         *ApplicationService
	events      *memory.EventLog
	category    *category.Category
	genre       *genre.Genre
	castMember  *castmember.CastMember
	castMember2 *castmember.CastMember
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	categoryRepo := memory.NewCategoryRepository()
	genreRepo := memory.NewGenreRepository()
	castMemberRepo := memory.NewCastMemberRepository()
	videoRepo := memory.NewVideoRepository()
	factory := memory.NewUnitOfWorkFactory(nil, categoryRepo, genreRepo, castMemberRepo, videoRepo)

	c := category.NewCategory(category.Props{Name: "Movie"})
	g := genre.NewGenre(genre.Props{Name: "Action", CategoriesID: []category.CategoryID{c.ID()}})
	m1 := castmember.NewCastMember(castmember.Props{Name: "Jane", Type: castmember.Actor})
	m2 := castmember.NewCastMember(castmember.Props{Name: "John", Type: castmember.Director})
	require.NoError(t, categoryRepo.Insert(ctx, c))
	require.NoError(t, genreRepo.Insert(ctx, g))
	require.NoError(t, castMemberRepo.BulkInsert(ctx, []*castmember.CastMember{m1, m2}))

	return &fixture{
		svc:         NewApplicationService(videoRepo, categoryRepo, genreRepo, castMemberRepo, factory),
		events:      factory.EventLog(),
		category:    c,
		genre:       g,
		castMember:  m1,
		castMember2: m2,
	}
}

func (f *fixture) validInput(title string) CreateVideoInput {
	return CreateVideoInput{
		Title:         title,
		Description:   "description",
		YearLaunched:  2020,
		Duration:      90,
		Rating:        "L",
		CategoriesID:  []string{f.category.ID().String()},
		GenresID:      []string{f.genre.ID().String()},
		CastMembersID: []string{f.castMember2.ID().String(), f.castMember.ID().String()},
	}
}

func ptr[T any](v T) *T { return &v }

// TestApplicationService_CreateAndGet Get 返回组合好的关联
func TestApplicationService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.Create(ctx, f.validInput("The Movie"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	out, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Movie", out.Title)
	assert.Equal(t, "L", out.Rating)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "Movie", out.Categories[0].Name)
	require.Len(t, out.Genres, 1)
	assert.Equal(t, []string{f.category.ID().String()}, out.Genres[0].CategoriesID)
	require.Len(t, out.CastMembers, 2)
	assert.Equal(t, "John", out.CastMembers[0].Name)
	assert.Equal(t, int(castmember.Director), out.CastMembers[0].Type)
	assert.Equal(t, "Jane", out.CastMembers[1].Name)

	events := f.events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "video.created", events[0].EventName())
}

// TestApplicationService_CreateFoldsErrors rating 与各类关联错误一起返回
func TestApplicationService_CreateFoldsErrors(t *testing.T) {
	f := newFixture(t)
	missingCategory := category.NewCategoryID()
	missingGenre := genre.NewGenreID()

	in := f.validInput("The Movie")
	in.YearLaunched = -1
	in.Rating = "20"
	in.CategoriesID = []string{missingCategory.String()}
	in.GenresID = []string{f.genre.ID().String(), missingGenre.String()}

	_, err := f.svc.Create(context.Background(), in)
	var validationErr *shared.EntityValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"year_launched", "rating", "categories_id", "genres_id"}, validationErr.Fields())
	assert.Equal(t, []string{"Category Not Found using ID " + missingCategory.String()}, validationErr.Messages("categories_id"))
	assert.Equal(t, []string{"Genre Not Found using ID " + missingGenre.String()}, validationErr.Messages("genres_id"))
	assert.Empty(t, f.events.Events())
}

func TestApplicationService_CreateInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), CreateVideoInput{})
	var validationErr *shared.EntityValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"title", "year_launched", "duration", "rating", "categories_id", "genres_id", "cast_members_id",
	}, validationErr.Fields())
}

func TestApplicationService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.svc.Create(ctx, f.validInput("The Movie"))
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, UpdateVideoInput{
		ID:            created.ID,
		Title:         ptr("Renamed"),
		Rating:        ptr("18"),
		IsPublished:   ptr(true),
		CastMembersID: []string{f.castMember.ID().String()},
	})
	require.NoError(t, err)

	out, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", out.Title)
	assert.Equal(t, "18", out.Rating)
	assert.True(t, out.IsPublished)
	assert.Equal(t, []string{f.castMember.ID().String()}, out.CastMembersID)
	assert.Equal(t, []string{f.genre.ID().String()}, out.GenresID)

	_, err = f.svc.Update(ctx, UpdateVideoInput{
		ID:       created.ID,
		Rating:   ptr("X"),
		GenresID: []string{genre.NewGenreID().String()},
	})
	var validationErr *shared.EntityValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"rating", "genres_id"}, validationErr.Fields())

	_, err = f.svc.Update(ctx, UpdateVideoInput{ID: video.NewVideoID().String(), Title: ptr("x")})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestApplicationService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first, err := f.svc.Create(ctx, f.validInput("Alpha"))
	require.NoError(t, err)

	in := f.validInput("Beta")
	in.CastMembersID = []string{f.castMember.ID().String()}
	_, err = f.svc.Create(ctx, in)
	require.NoError(t, err)

	out, err := f.svc.List(ctx, ListVideosInput{
		SearchInput: shared.SearchInput{Sort: "title"},
		Filter:      &video.FilterInput{CastMembersID: []string{f.castMember2.ID().String()}},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Alpha", out.Items[0].Title)
	assert.Len(t, out.Items[0].CastMembers, 2)

	out, err = f.svc.List(ctx, ListVideosInput{SearchInput: shared.SearchInput{Sort: "title", SortDir: "desc"}})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "Beta", out.Items[0].Title)

	require.NoError(t, f.svc.Delete(ctx, first.ID))
	err = f.svc.Delete(ctx, first.ID)
	assert.EqualError(t, err, "Video Not Found using ID "+first.ID)
}
