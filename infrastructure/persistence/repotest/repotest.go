/*
Package repotest 仓储契约测试

memory 与 gormstore 两种实现跑同一组断言，保证过滤、排序、分页的结果一致。
每个用例通过 factory 拿到一个空仓储；gormstore 的 factory 需要为每次调用准备独立的数据库。
*/
package repotest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
	"catalog/domain/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseTime 所有夹具的 created_at 以它为起点逐秒递增，避免排序出现并列
var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(seconds int) *time.Time {
	t := baseTime.Add(time.Duration(seconds) * time.Second)
	return &t
}

func names[E any](items []E, name func(E) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = name(item)
	}
	return out
}

// ============================================================================
// Category
// ============================================================================

func newCategory(name string, seconds int) *category.Category {
	return category.NewCategory(category.Props{Name: name, CreatedAt: at(seconds)})
}

func categoryName(c *category.Category) string { return c.Name() }

// RunCategoryRepository 分类仓储契约
func RunCategoryRepository(t *testing.T, factory func(t *testing.T) category.Repository) {
	t.Run("CRUD", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)

		description := "desc"
		c := category.NewCategory(category.Props{Name: "Movie", Description: &description, CreatedAt: at(0)})
		require.NoError(t, repo.Insert(ctx, c))

		found, err := repo.FindByID(ctx, c.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Movie", found.Name())
		assert.Equal(t, "desc", *found.Description())
		assert.True(t, found.IsActive())
		assert.True(t, found.CreatedAt().Equal(*at(0)))

		found.ChangeName("Documentary")
		found.Deactivate()
		require.NoError(t, repo.Update(ctx, found))

		updated, err := repo.FindByID(ctx, c.ID())
		require.NoError(t, err)
		assert.Equal(t, "Documentary", updated.Name())
		assert.False(t, updated.IsActive())

		require.NoError(t, repo.Delete(ctx, c.ID()))
		missing, err := repo.FindByID(ctx, c.ID())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)

		ghost := newCategory("ghost", 0)
		err := repo.Update(ctx, ghost)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.EqualError(t, err, fmt.Sprintf("Category Not Found using ID %s", ghost.ID()))

		err = repo.Delete(ctx, ghost.ID())
		assert.EqualError(t, err, fmt.Sprintf("Category Not Found using ID %s", ghost.ID()))
	})

	t.Run("FindByIDsAndExists", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)

		a, b := newCategory("a", 0), newCategory("b", 1)
		require.NoError(t, repo.BulkInsert(ctx, []*category.Category{a, b}))
		require.NoError(t, repo.BulkInsert(ctx, nil))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		ghost := category.NewCategoryID()
		found, err := repo.FindByIDs(ctx, []category.CategoryID{b.ID(), ghost})
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, names(found, categoryName))

		none, err := repo.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)

		result, err := repo.ExistsByIDs(ctx, []category.CategoryID{ghost, a.ID()})
		require.NoError(t, err)
		assert.Equal(t, []category.CategoryID{a.ID()}, result.Exists)
		assert.Equal(t, []category.CategoryID{ghost}, result.NotExists)

		_, err = repo.ExistsByIDs(ctx, []category.CategoryID{})
		assert.ErrorIs(t, err, shared.ErrInvalidArgument)
	})

	t.Run("SearchDefaultsToCreatedAtDesc", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)
		require.NoError(t, repo.BulkInsert(ctx, []*category.Category{
			newCategory("b", 0), newCategory("c", 1), newCategory("a", 2),
		}))

		for _, in := range []shared.SearchInput{
			{},
			{SortDir: "asc"},
			{Sort: "unknown", SortDir: "asc"},
			{Sort: "description", SortDir: "desc"},
		} {
			result, err := repo.Search(ctx, category.NewSearchParams(in, ""))
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "c", "b"}, names(result.Items(), categoryName), "input %+v", in)
		}
	})

	t.Run("SearchPagesConcatenate", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)
		input := []string{"g", "B", "e", "a", "F", "c", "d"}
		for i, n := range input {
			require.NoError(t, repo.Insert(ctx, newCategory(n, i)))
		}

		var got []string
		for page := 1; page <= 4; page++ {
			result, err := repo.Search(ctx, category.NewSearchParams(
				shared.SearchInput{Page: page, PerPage: 2, Sort: "name"}, ""))
			require.NoError(t, err)
			assert.Equal(t, 7, result.Total())
			assert.Equal(t, 4, result.LastPage())
			assert.Equal(t, page, result.CurrentPage())
			got = append(got, names(result.Items(), categoryName)...)
		}
		// 字节序：大写字母在小写之前
		assert.Equal(t, []string{"B", "F", "a", "c", "d", "e", "g"}, got)

		beyond, err := repo.Search(ctx, category.NewSearchParams(
			shared.SearchInput{Page: 9, PerPage: 2, Sort: "name"}, ""))
		require.NoError(t, err)
		assert.Empty(t, beyond.Items())
		assert.Equal(t, 7, beyond.Total())
	})

	t.Run("SearchFilterIsCaseInsensitive", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)
		require.NoError(t, repo.BulkInsert(ctx, []*category.Category{
			newCategory("test", 0), newCategory("a", 1), newCategory("TEST", 2),
			newCategory("e", 3), newCategory("TeSt", 4), newCategory("50%_off", 5),
		}))

		result, err := repo.Search(ctx, category.NewSearchParams(
			shared.SearchInput{Page: 1, PerPage: 2, Sort: "name", SortDir: "desc"}, "TEST"))
		require.NoError(t, err)
		assert.Equal(t, []string{"test", "TeSt"}, names(result.Items(), categoryName))
		assert.Equal(t, 3, result.Total())
		assert.Equal(t, 2, result.LastPage())

		// 通配符按字面匹配
		result, err = repo.Search(ctx, category.NewSearchParams(shared.SearchInput{}, "%_"))
		require.NoError(t, err)
		assert.Equal(t, []string{"50%_off"}, names(result.Items(), categoryName))
	})

	// 只折叠 ASCII：É/é、开尔文符号 K 与 k 互不匹配
	t.Run("SearchFilterFoldsASCIIOnly", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)
		require.NoError(t, repo.BulkInsert(ctx, []*category.Category{
			newCategory("ÉCOLE", 0), newCategory("école", 1), newCategory("\u212Aelvin", 2),
			newCategory("Kelvin", 3),
		}))

		tests := []struct {
			term string
			want []string
		}{
			{"é", []string{"école"}},
			{"É", []string{"ÉCOLE"}},
			{"cole", []string{"école", "ÉCOLE"}},
			{"KEL", []string{"Kelvin"}},
			{"\u212A", []string{"\u212Aelvin"}},
		}
		for _, tt := range tests {
			result, err := repo.Search(ctx, category.NewSearchParams(shared.SearchInput{}, tt.term))
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(result.Items(), categoryName), "term %q", tt.term)
			assert.Equal(t, len(tt.want), result.Total(), "term %q", tt.term)
		}
	})
}

// ============================================================================
// CastMember
// ============================================================================

func newCastMember(name string, typ castmember.CastMemberType, seconds int) *castmember.CastMember {
	return castmember.NewCastMember(castmember.Props{Name: name, Type: typ, CreatedAt: at(seconds)})
}

func castMemberName(m *castmember.CastMember) string { return m.Name() }

// RunCastMemberRepository 演职人员仓储契约
func RunCastMemberRepository(t *testing.T, factory func(t *testing.T) castmember.Repository) {
	t.Run("CRUD", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)

		m := newCastMember("Jane", castmember.Actor, 0)
		require.NoError(t, repo.Insert(ctx, m))

		m.ChangeType(castmember.Director)
		require.NoError(t, repo.Update(ctx, m))

		found, err := repo.FindByID(ctx, m.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, castmember.Director, found.Type())

		require.NoError(t, repo.Delete(ctx, m.ID()))
		err = repo.Delete(ctx, m.ID())
		assert.EqualError(t, err, fmt.Sprintf("CastMember Not Found using ID %s", m.ID()))
	})

	t.Run("SearchByNamePaginated", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)
		for i, n := range []string{"a", "AAA", "AaA", "b", "c"} {
			require.NoError(t, repo.Insert(ctx, newCastMember(n, castmember.Actor, i)))
		}

		want := [][]string{{"AAA", "AaA"}, {"a"}}
		for page, expected := range want {
			params, err := castmember.NewSearchParams(
				shared.SearchInput{Page: page + 1, PerPage: 2, Sort: "name", SortDir: "asc"},
				&castmember.FilterInput{Name: "a"})
			require.NoError(t, err)

			result, err := repo.Search(ctx, params)
			require.NoError(t, err)
			assert.Equal(t, expected, names(result.Items(), castMemberName))
			assert.Equal(t, 3, result.Total())
			assert.Equal(t, 2, result.LastPage())
		}
	})

	t.Run("SearchByType", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)
		require.NoError(t, repo.BulkInsert(ctx, []*castmember.CastMember{
			newCastMember("director one", castmember.Director, 0),
			newCastMember("actor one", castmember.Actor, 1),
			newCastMember("director two", castmember.Director, 2),
		}))

		params, err := castmember.NewSearchParams(shared.SearchInput{}, &castmember.FilterInput{Type: "1"})
		require.NoError(t, err)
		result, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []string{"director two", "director one"}, names(result.Items(), castMemberName))

		params, err = castmember.NewSearchParams(shared.SearchInput{}, &castmember.FilterInput{Name: "TWO", Type: 1})
		require.NoError(t, err)
		result, err = repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []string{"director two"}, names(result.Items(), castMemberName))
	})
}

// ============================================================================
// Genre
// ============================================================================

func newGenre(name string, seconds int, categories ...category.CategoryID) *genre.Genre {
	return genre.NewGenre(genre.Props{Name: name, CategoriesID: categories, CreatedAt: at(seconds)})
}

func genreName(g *genre.Genre) string { return g.Name() }

// RunGenreRepository 类型仓储契约
func RunGenreRepository(t *testing.T, factory func(t *testing.T) genre.Repository) {
	t.Run("RelationsKeepOrder", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)
		c1, c2, c3 := category.NewCategoryID(), category.NewCategoryID(), category.NewCategoryID()

		g := newGenre("Action", 0, c2, c1)
		require.NoError(t, repo.Insert(ctx, g))

		found, err := repo.FindByID(ctx, g.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, []category.CategoryID{c2, c1}, found.CategoriesID())

		require.NoError(t, found.SyncCategoriesID([]category.CategoryID{c3, c1}))
		found.ChangeName("Adventure")
		require.NoError(t, repo.Update(ctx, found))

		updated, err := repo.FindByID(ctx, g.ID())
		require.NoError(t, err)
		assert.Equal(t, "Adventure", updated.Name())
		assert.Equal(t, []category.CategoryID{c3, c1}, updated.CategoriesID())

		byIDs, err := repo.FindByIDs(ctx, []genre.GenreID{g.ID()})
		require.NoError(t, err)
		require.Len(t, byIDs, 1)
		assert.Equal(t, []category.CategoryID{c3, c1}, byIDs[0].CategoriesID())
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		repo := factory(t)
		id := genre.NewGenreID()

		err := repo.Delete(context.Background(), id)
		assert.EqualError(t, err, "Genre Not Found using ID "+id.String())
	})

	t.Run("SearchByCategories", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)
		c1, c2, c3 := category.NewCategoryID(), category.NewCategoryID(), category.NewCategoryID()
		require.NoError(t, repo.BulkInsert(ctx, []*genre.Genre{
			newGenre("Action", 0, c1),
			newGenre("Drama", 1, c2),
			newGenre("Comedy", 2, c1, c2),
			newGenre("Horror", 3, c3),
		}))

		params, err := genre.NewSearchParams(shared.SearchInput{Sort: "name"},
			&genre.FilterInput{CategoriesID: []string{c2.String(), c1.String()}})
		require.NoError(t, err)
		result, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []string{"Action", "Comedy", "Drama"}, names(result.Items(), genreName))
		assert.Equal(t, 3, result.Total())

		for _, g := range result.Items() {
			assert.NotEmpty(t, g.CategoriesID())
		}

		params, err = genre.NewSearchParams(shared.SearchInput{},
			&genre.FilterInput{Name: "o", CategoriesID: []string{c1.String()}})
		require.NoError(t, err)
		result, err = repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []string{"Comedy", "Action"}, names(result.Items(), genreName))
	})
}

// ============================================================================
// Video
// ============================================================================

type videoRelations struct {
	categories  []category.CategoryID
	genres      []genre.GenreID
	castMembers []castmember.CastMemberID
}

func newVideo(title string, seconds int, rel videoRelations) *video.Video {
	return video.NewVideo(video.Props{
		Title:         title,
		Description:   title + " description",
		YearLaunched:  2000 + seconds,
		Duration:      90,
		Rating:        video.Rating12,
		CategoriesID:  rel.categories,
		GenresID:      rel.genres,
		CastMembersID: rel.castMembers,
		CreatedAt:     at(seconds),
	})
}

func videoTitle(v *video.Video) string { return v.Title() }

// RunVideoRepository 视频仓储契约
func RunVideoRepository(t *testing.T, factory func(t *testing.T) video.Repository) {
	c1, c2 := category.NewCategoryID(), category.NewCategoryID()
	g1, g2 := genre.NewGenreID(), genre.NewGenreID()
	m1, m2 := castmember.NewCastMemberID(), castmember.NewCastMemberID()

	t.Run("CRUD", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)

		v := newVideo("Alpha", 0, videoRelations{
			categories:  []category.CategoryID{c2, c1},
			genres:      []genre.GenreID{g1},
			castMembers: []castmember.CastMemberID{m2, m1},
		})
		require.NoError(t, repo.Insert(ctx, v))

		found, err := repo.FindByID(ctx, v.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Alpha", found.Title())
		assert.Equal(t, video.Rating12, found.Rating())
		assert.Equal(t, 2000, found.YearLaunched())
		assert.Equal(t, []category.CategoryID{c2, c1}, found.CategoriesID())
		assert.Equal(t, []genre.GenreID{g1}, found.GenresID())
		assert.Equal(t, []castmember.CastMemberID{m2, m1}, found.CastMembersID())

		found.ChangeRating(video.Rating18)
		found.Publish()
		require.NoError(t, found.SyncGenresID([]genre.GenreID{g2, g1}))
		require.NoError(t, repo.Update(ctx, found))

		updated, err := repo.FindByID(ctx, v.ID())
		require.NoError(t, err)
		assert.Equal(t, video.Rating18, updated.Rating())
		assert.True(t, updated.IsPublished())
		assert.Equal(t, []genre.GenreID{g2, g1}, updated.GenresID())
		assert.Equal(t, []castmember.CastMemberID{m2, m1}, updated.CastMembersID())

		require.NoError(t, repo.Delete(ctx, v.ID()))
		assert.ErrorIs(t, repo.Delete(ctx, v.ID()), shared.ErrNotFound)
		assert.ErrorIs(t, repo.Update(ctx, v), shared.ErrNotFound)
	})

	t.Run("SearchByRelations", func(t *testing.T) {
		ctx := context.Background()
		repo := factory(t)
		require.NoError(t, repo.BulkInsert(ctx, []*video.Video{
			newVideo("Alpha", 0, videoRelations{categories: []category.CategoryID{c1}, genres: []genre.GenreID{g1}, castMembers: []castmember.CastMemberID{m1}}),
			newVideo("Beta", 1, videoRelations{categories: []category.CategoryID{c2}, genres: []genre.GenreID{g1}, castMembers: []castmember.CastMemberID{m2}}),
			newVideo("Gamma", 2, videoRelations{categories: []category.CategoryID{c1, c2}, genres: []genre.GenreID{g2}, castMembers: []castmember.CastMemberID{m1}}),
		}))

		tests := []struct {
			name   string
			filter video.FilterInput
			want   []string
		}{
			{"title", video.FilterInput{Title: "ALP"}, []string{"Alpha"}},
			{"categories", video.FilterInput{CategoriesID: []string{c2.String()}}, []string{"Gamma", "Beta"}},
			{"genres", video.FilterInput{GenresID: []string{g1.String()}}, []string{"Beta", "Alpha"}},
			{"cast members and genres", video.FilterInput{
				GenresID:      []string{g2.String(), g1.String()},
				CastMembersID: []string{m1.String()},
			}, []string{"Gamma", "Alpha"}},
			{"all", video.FilterInput{
				Title:         "a",
				CategoriesID:  []string{c1.String()},
				GenresID:      []string{g2.String()},
				CastMembersID: []string{m1.String()},
			}, []string{"Gamma"}},
			{"no match", video.FilterInput{Title: "zeta"}, []string{}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				params, err := video.NewSearchParams(shared.SearchInput{}, &tt.filter)
				require.NoError(t, err)
				result, err := repo.Search(ctx, params)
				require.NoError(t, err)
				assert.Equal(t, tt.want, names(result.Items(), videoTitle))
				assert.Equal(t, len(tt.want), result.Total())
			})
		}

		params, err := video.NewSearchParams(shared.SearchInput{Sort: "title", SortDir: "desc", PerPage: 2}, nil)
		require.NoError(t, err)
		result, err := repo.Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []string{"Gamma", "Beta"}, names(result.Items(), videoTitle))
		assert.Equal(t, 2, result.LastPage())
	})
}
