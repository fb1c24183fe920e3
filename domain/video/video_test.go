package video

import (
	"context"
	"strings"
	"testing"
	"time"

	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProps() Props {
	return Props{
		Title:         "The Movie",
		Description:   "description",
		YearLaunched:  2020,
		Duration:      90,
		Rating:        Rating14,
		CategoriesID:  []category.CategoryID{category.NewCategoryID()},
		GenresID:      []genre.GenreID{genre.NewGenreID()},
		CastMembersID: []castmember.CastMemberID{castmember.NewCastMemberID()},
	}
}

func TestNewRating(t *testing.T) {
	for _, r := range []string{"L", "10", "12", "14", "16", "18"} {
		rating, err := NewRating(r).AsArray()
		require.NoError(t, err)
		assert.Equal(t, r, rating.String())
	}

	_, err := NewRating("20").AsArray()
	assert.EqualError(t, err, "The rating must be one of the following values: L, 10, 12, 14, 16, 18, passed value: 20")
}

// TestNewVideo 测试创建视频及事件
func TestNewVideo(t *testing.T) {
	props := validProps()
	v := NewVideo(props)

	assert.False(t, v.Notification().HasErrors())
	assert.False(t, v.IsOpened())
	assert.False(t, v.IsPublished())
	assert.Equal(t, props.CategoriesID, v.CategoriesID())
	assert.Equal(t, props.GenresID, v.GenresID())
	assert.Equal(t, props.CastMembersID, v.CastMembersID())

	events := v.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "video.created", events[0].EventName())
	assert.Equal(t, "14", events[0].Payload()["rating"])
}

func TestNewVideo_Validation(t *testing.T) {
	props := validProps()
	props.Title = strings.Repeat("t", 256)
	props.YearLaunched = 0
	props.Duration = -1

	v := NewVideo(props)
	assert.Equal(t, []shared.FieldErrors{
		{"title": {"title must be shorter than or equal to 255 characters"}},
		{"year_launched": {"year_launched must not be less than 1"}},
		{"duration": {"duration must not be less than 1"}},
	}, v.Notification().Errors())
}

func TestVideo_Mutators(t *testing.T) {
	v := NewVideo(validProps())

	v.ChangeTitle("Another")
	v.ChangeDescription("new")
	v.ChangeYearLaunched(1999)
	v.ChangeDuration(120)
	v.ChangeRating(Rating18)
	v.MarkAsOpened()
	v.Publish()

	assert.False(t, v.Notification().HasErrors())
	assert.Equal(t, "Another", v.Title())
	assert.Equal(t, "new", v.Description())
	assert.Equal(t, 1999, v.YearLaunched())
	assert.Equal(t, 120, v.Duration())
	assert.Equal(t, Rating18, v.Rating())
	assert.True(t, v.IsOpened())
	assert.True(t, v.IsPublished())

	v.MarkAsNotOpened()
	v.Unpublish()
	assert.False(t, v.IsOpened())
	assert.False(t, v.IsPublished())
}

func TestVideo_Relations(t *testing.T) {
	v := NewVideo(validProps())
	g := genre.NewGenreID()
	m := castmember.NewCastMemberID()
	c := category.NewCategoryID()

	v.AddGenreID(g)
	assert.Len(t, v.GenresID(), 2)
	v.RemoveGenreID(g)
	assert.Len(t, v.GenresID(), 1)

	v.AddCastMemberID(m)
	v.RemoveCastMemberID(m)
	assert.Len(t, v.CastMembersID(), 1)

	v.AddCategoryID(c)
	v.RemoveCategoryID(c)
	assert.Len(t, v.CategoriesID(), 1)

	require.NoError(t, v.SyncCategoriesID([]category.CategoryID{c}))
	require.NoError(t, v.SyncGenresID([]genre.GenreID{g}))
	require.NoError(t, v.SyncCastMembersID([]castmember.CastMemberID{m}))
	assert.Equal(t, []category.CategoryID{c}, v.CategoriesID())
	assert.Equal(t, []genre.GenreID{g}, v.GenresID())
	assert.Equal(t, []castmember.CastMemberID{m}, v.CastMembersID())
}

func TestRebuildFromDTO(t *testing.T) {
	id := NewVideoID()
	dto := ReconstructionDTO{
		ID:            id.String(),
		Title:         "Title",
		YearLaunched:  2001,
		Duration:      100,
		Rating:        "L",
		CategoriesID:  []string{category.NewCategoryID().String()},
		GenresID:      []string{},
		CastMembersID: []string{},
		CreatedAt:     time.Now(),
	}

	v, err := RebuildFromDTO(dto)
	require.NoError(t, err)
	assert.Equal(t, RatingFree, v.Rating())
	assert.Empty(t, v.PullEvents())

	dto.Rating = "X"
	_, err = RebuildFromDTO(dto)
	var loadErr *shared.LoadEntityError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, []string{"rating"}, loadErr.Fields())
}

// TestNewSearchParams 每个非法 id 字段各自收集错误
func TestNewSearchParams(t *testing.T) {
	p, err := NewSearchParams(shared.SearchInput{}, &FilterInput{Title: "  "})
	require.NoError(t, err)
	assert.False(t, p.HasFilter())

	_, err = NewSearchParams(shared.SearchInput{}, &FilterInput{
		CategoriesID:  []string{"x"},
		CastMembersID: []string{"y"},
	})
	var searchErr *shared.SearchValidationError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, []string{"categories_id", "cast_members_id"}, searchErr.Fields())
}

func TestFilter_Specification(t *testing.T) {
	ctx := context.Background()
	props := validProps()
	v := NewVideo(props)

	match := Filter{Title: "movie", GenresID: props.GenresID}.Specification()
	assert.True(t, match.IsSatisfiedBy(ctx, v))

	miss := Filter{CastMembersID: []castmember.CastMemberID{castmember.NewCastMemberID()}}.Specification()
	assert.False(t, miss.IsSatisfiedBy(ctx, v))

	byCategory := Filter{CategoriesID: props.CategoriesID}.Specification()
	assert.True(t, byCategory.IsSatisfiedBy(ctx, v))
}
