package memory

import (
	"strings"
	"time"

	"catalog/domain/shared"
	"catalog/domain/video"
)

// VideoRepository 视频仓储的内存实现
type VideoRepository struct {
	*SearchableRepository[*video.Video, video.VideoID, video.Filter]
}

func NewVideoRepository() *VideoRepository {
	return &VideoRepository{
		SearchableRepository: NewSearchableRepository[*video.Video, video.VideoID](
			video.EntityName,
			func(f video.Filter) shared.Specification[*video.Video] { return f.Specification() },
			func(v *video.Video) time.Time { return v.CreatedAt() },
			SortField[*video.Video]{Name: "title", Compare: func(a, b *video.Video) int {
				return strings.Compare(a.Title(), b.Title())
			}},
			SortField[*video.Video]{Name: "created_at", Compare: func(a, b *video.Video) int {
				return a.CreatedAt().Compare(b.CreatedAt())
			}},
		),
	}
}

var _ video.Repository = (*VideoRepository)(nil)
