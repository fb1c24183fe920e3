package memory

import (
	"strings"
	"time"

	"catalog/domain/genre"
	"catalog/domain/shared"
)

// GenreRepository 类型仓储的内存实现
type GenreRepository struct {
	*SearchableRepository[*genre.Genre, genre.GenreID, genre.Filter]
}

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{
		SearchableRepository: NewSearchableRepository[*genre.Genre, genre.GenreID](
			genre.EntityName,
			func(f genre.Filter) shared.Specification[*genre.Genre] { return f.Specification() },
			func(g *genre.Genre) time.Time { return g.CreatedAt() },
			SortField[*genre.Genre]{Name: "name", Compare: func(a, b *genre.Genre) int {
				return strings.Compare(a.Name(), b.Name())
			}},
			SortField[*genre.Genre]{Name: "created_at", Compare: func(a, b *genre.Genre) int {
				return a.CreatedAt().Compare(b.CreatedAt())
			}},
		),
	}
}

var _ genre.Repository = (*GenreRepository)(nil)
