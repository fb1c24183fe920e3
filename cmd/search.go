package cmd

import (
	"context"

	castmemberapp "catalog/application/castmember"
	categoryapp "catalog/application/category"
	genreapp "catalog/application/genre"
	videoapp "catalog/application/video"
	"catalog/domain/castmember"
	"catalog/domain/genre"
	"catalog/domain/shared"
	"catalog/domain/video"

	"github.com/spf13/cobra"
)

// searchFlags page / per_page 以字符串接收，非法值由 SearchParams 回落到默认值
type searchFlags struct {
	page        string
	perPage     string
	sort        string
	sortDir     string
	filter      string
	name        string
	title       string
	castType    string
	categories  []string
	genres      []string
	castMembers []string
}

func (f *searchFlags) input() shared.SearchInput {
	in := shared.SearchInput{Sort: f.sort, SortDir: f.sortDir}
	if f.page != "" {
		in.Page = f.page
	}
	if f.perPage != "" {
		in.PerPage = f.perPage
	}
	return in
}

func newSearchCommand(opts *options) *cobra.Command {
	f := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search <kind>",
		Short: "Search aggregates with filter, sort and pagination",
		Example: `  catalogctl search categories --filter movie --sort name
  catalogctl search cast-members --name a --type 1 --per-page 2 --page 2
  catalogctl search videos --title matrix --genres <genre-id>`,
		Args: cobra.ExactArgs(1),
		RunE: runWithApp(opts, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			k, err := parseKind(args[0])
			if err != nil {
				return err
			}

			var out any
			switch k {
			case kindCategory:
				out, err = app.Categories.List(ctx, categoryapp.ListCategoriesInput{
					SearchInput: f.input(),
					Filter:      firstNonEmpty(f.filter, f.name),
				})
			case kindCastMember:
				filter := &castmember.FilterInput{Name: firstNonEmpty(f.name, f.filter)}
				if f.castType != "" {
					filter.Type = f.castType
				}
				out, err = app.CastMembers.List(ctx, castmemberapp.ListCastMembersInput{
					SearchInput: f.input(),
					Filter:      filter,
				})
			case kindGenre:
				out, err = app.Genres.List(ctx, genreapp.ListGenresInput{
					SearchInput: f.input(),
					Filter: &genre.FilterInput{
						Name:         firstNonEmpty(f.name, f.filter),
						CategoriesID: f.categories,
					},
				})
			case kindVideo:
				out, err = app.Videos.List(ctx, videoapp.ListVideosInput{
					SearchInput: f.input(),
					Filter: &video.FilterInput{
						Title:         firstNonEmpty(f.title, f.filter),
						CategoriesID:  f.categories,
						GenresID:      f.genres,
						CastMembersID: f.castMembers,
					},
				})
			}
			if err != nil {
				return err
			}
			writeJSON(cmd.OutOrStdout(), out)
			return nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&f.page, "page", "", "Page number (default 1)")
	flags.StringVar(&f.perPage, "per-page", "", "Items per page (default 15)")
	flags.StringVar(&f.sort, "sort", "", "Sort field (name/title, created_at)")
	flags.StringVar(&f.sortDir, "sort-dir", "", "Sort direction: asc or desc")
	flags.StringVar(&f.filter, "filter", "", "Name or title contains (case-insensitive)")
	flags.StringVar(&f.name, "name", "", "Name contains (categories, cast members, genres)")
	flags.StringVar(&f.title, "title", "", "Title contains (videos)")
	flags.StringVar(&f.castType, "type", "", "Cast member type: 1 director, 2 actor")
	flags.StringSliceVar(&f.categories, "categories", nil, "Related category ids (genres, videos)")
	flags.StringSliceVar(&f.genres, "genres", nil, "Related genre ids (videos)")
	flags.StringSliceVar(&f.castMembers, "cast-members", nil, "Related cast member ids (videos)")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
