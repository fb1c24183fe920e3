package cmd

import (
	"context"
	"fmt"
	"os"

	castmemberapp "catalog/application/castmember"
	categoryapp "catalog/application/category"
	genreapp "catalog/application/genre"
	videoapp "catalog/application/video"
	apperrors "catalog/pkg/errors"
	"catalog/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Fixtures seed 文件格式；genres / videos 通过名称引用前面定义的聚合
type Fixtures struct {
	Categories  []categoryapp.CreateCategoryInput     `yaml:"categories"`
	CastMembers []castmemberapp.CreateCastMemberInput `yaml:"cast_members"`
	Genres      []GenreFixture                        `yaml:"genres"`
	Videos      []VideoFixture                        `yaml:"videos"`
}

type GenreFixture struct {
	Name       string   `yaml:"name"`
	IsActive   *bool    `yaml:"is_active"`
	Categories []string `yaml:"categories"`
}

type VideoFixture struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	YearLaunched int      `yaml:"year_launched"`
	Duration     int      `yaml:"duration"`
	Rating       string   `yaml:"rating"`
	IsOpened     bool     `yaml:"is_opened"`
	IsPublished  bool     `yaml:"is_published"`
	Categories   []string `yaml:"categories"`
	Genres       []string `yaml:"genres"`
	CastMembers  []string `yaml:"cast_members"`
}

// SeedSummary seed 命令的输出
type SeedSummary struct {
	Categories  int `json:"categories"`
	CastMembers int `json:"cast_members"`
	Genres      int `json:"genres"`
	Videos      int `json:"videos"`
}

func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidArgument, "failed to read fixtures file")
	}
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidArgument, "failed to parse fixtures file")
	}
	return &f, nil
}

// Seed 通过用例创建 fixtures 中的全部聚合，名称引用在这里解析为 id
func Seed(ctx context.Context, app *App, f *Fixtures) (SeedSummary, error) {
	var summary SeedSummary
	log := logger.FromContext(ctx)

	categories := make(map[string]string, len(f.Categories))
	for _, in := range f.Categories {
		out, err := app.Categories.Create(ctx, in)
		if err != nil {
			return summary, fmt.Errorf("category %q: %w", in.Name, err)
		}
		categories[out.Name] = out.ID
		summary.Categories++
	}

	castMembers := make(map[string]string, len(f.CastMembers))
	for _, in := range f.CastMembers {
		out, err := app.CastMembers.Create(ctx, in)
		if err != nil {
			return summary, fmt.Errorf("cast member %q: %w", in.Name, err)
		}
		castMembers[out.Name] = out.ID
		summary.CastMembers++
	}

	genres := make(map[string]string, len(f.Genres))
	for _, g := range f.Genres {
		categoriesID, err := resolveNames("category", categories, g.Categories)
		if err != nil {
			return summary, fmt.Errorf("genre %q: %w", g.Name, err)
		}
		out, err := app.Genres.Create(ctx, genreapp.CreateGenreInput{
			Name:         g.Name,
			CategoriesID: categoriesID,
			IsActive:     g.IsActive,
		})
		if err != nil {
			return summary, fmt.Errorf("genre %q: %w", g.Name, err)
		}
		genres[out.Name] = out.ID
		summary.Genres++
	}

	for _, v := range f.Videos {
		categoriesID, err := resolveNames("category", categories, v.Categories)
		if err != nil {
			return summary, fmt.Errorf("video %q: %w", v.Title, err)
		}
		genresID, err := resolveNames("genre", genres, v.Genres)
		if err != nil {
			return summary, fmt.Errorf("video %q: %w", v.Title, err)
		}
		castMembersID, err := resolveNames("cast member", castMembers, v.CastMembers)
		if err != nil {
			return summary, fmt.Errorf("video %q: %w", v.Title, err)
		}
		_, err = app.Videos.Create(ctx, videoapp.CreateVideoInput{
			Title:         v.Title,
			Description:   v.Description,
			YearLaunched:  v.YearLaunched,
			Duration:      v.Duration,
			Rating:        v.Rating,
			IsOpened:      v.IsOpened,
			IsPublished:   v.IsPublished,
			CategoriesID:  categoriesID,
			GenresID:      genresID,
			CastMembersID: castMembersID,
		})
		if err != nil {
			return summary, fmt.Errorf("video %q: %w", v.Title, err)
		}
		summary.Videos++
	}

	log.Info("Fixtures seeded",
		zap.Int("categories", summary.Categories),
		zap.Int("cast_members", summary.CastMembers),
		zap.Int("genres", summary.Genres),
		zap.Int("videos", summary.Videos))
	return summary, nil
}

func resolveNames(what string, byName map[string]string, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			return nil, apperrors.InvalidArgument(fmt.Sprintf("unknown %s %q", what, name))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func newSeedCommand(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create catalog data from a YAML fixtures file",
		RunE: runWithApp(opts, func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			fixtures, err := LoadFixtures(file)
			if err != nil {
				return err
			}
			summary, err := Seed(ctx, app, fixtures)
			if err != nil {
				return err
			}
			writeJSON(cmd.OutOrStdout(), summary)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "Fixtures file")
	return cmd
}
