package video

import (
	"time"

	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
)

const EntityName = "Video"

type VideoID struct {
	shared.Uuid
}

func NewVideoID() VideoID {
	return VideoID{shared.NewUuid()}
}

func ParseVideoID(id string) (VideoID, error) {
	u, err := shared.ParseUuid(id)
	if err != nil {
		return VideoID{}, err
	}
	return VideoID{u}, nil
}

// Video 视频聚合根
// 分类、类型、演职人员都是其他聚合，这里只保存 id 集合
type Video struct {
	shared.AggregateRoot

	id            VideoID
	title         string
	description   string
	yearLaunched  int
	duration      int
	rating        Rating
	isOpened      bool
	isPublished   bool
	categoriesID  shared.IDSet[category.CategoryID]
	genresID      shared.IDSet[genre.GenreID]
	castMembersID shared.IDSet[castmember.CastMemberID]
	createdAt     time.Time
}

type Props struct {
	ID            *VideoID
	Title         string
	Description   string
	YearLaunched  int
	Duration      int
	Rating        Rating
	IsOpened      bool
	IsPublished   bool
	CategoriesID  []category.CategoryID
	GenresID      []genre.GenreID
	CastMembersID []castmember.CastMemberID
	CreatedAt     *time.Time
}

func NewVideo(props Props) *Video {
	v := build(props)
	v.validate()
	v.RecordEvent(NewVideoCreatedEvent(v))
	return v
}

func build(props Props) *Video {
	v := &Video{
		AggregateRoot: shared.NewAggregateRoot(),
		id:            NewVideoID(),
		title:         props.Title,
		description:   props.Description,
		yearLaunched:  props.YearLaunched,
		duration:      props.Duration,
		rating:        props.Rating,
		isOpened:      props.IsOpened,
		isPublished:   props.IsPublished,
		categoriesID:  shared.NewIDSet(props.CategoriesID...),
		genresID:      shared.NewIDSet(props.GenresID...),
		castMembersID: shared.NewIDSet(props.CastMembersID...),
		createdAt:     time.Now(),
	}
	if props.ID != nil {
		v.id = *props.ID
	}
	if props.CreatedAt != nil {
		v.createdAt = *props.CreatedAt
	}
	return v
}

// ============================================================================
// 校验
// ============================================================================

func (v *Video) validate() {
	v.validateTitle()
	v.validateYearLaunched()
	v.validateDuration()
}

func (v *Video) validateTitle() bool {
	return shared.ValidateField(v.Notification(), "title", v.title, "required,max=255")
}

func (v *Video) validateYearLaunched() bool {
	return shared.ValidateField(v.Notification(), "year_launched", v.yearLaunched, "gte=1")
}

func (v *Video) validateDuration() bool {
	return shared.ValidateField(v.Notification(), "duration", v.duration, "gte=1")
}

// ============================================================================
// 领域行为方法
// ============================================================================

func (v *Video) ChangeTitle(title string) {
	v.title = title
	v.validateTitle()
}

func (v *Video) ChangeDescription(description string) { v.description = description }

func (v *Video) ChangeYearLaunched(year int) {
	v.yearLaunched = year
	v.validateYearLaunched()
}

func (v *Video) ChangeDuration(duration int) {
	v.duration = duration
	v.validateDuration()
}

// ChangeRating rating 已经由 NewRating 校验
func (v *Video) ChangeRating(rating Rating) { v.rating = rating }

func (v *Video) MarkAsOpened()    { v.isOpened = true }
func (v *Video) MarkAsNotOpened() { v.isOpened = false }
func (v *Video) Publish()         { v.isPublished = true }
func (v *Video) Unpublish()       { v.isPublished = false }

// ============================================================================
// 关联：add / remove 幂等，sync 整体替换
// ============================================================================

func (v *Video) AddCategoryID(id category.CategoryID)    { v.categoriesID.Add(id) }
func (v *Video) RemoveCategoryID(id category.CategoryID) { v.categoriesID.Remove(id) }
func (v *Video) SyncCategoriesID(ids []category.CategoryID) error {
	return v.categoriesID.Sync("categories_id", ids)
}

func (v *Video) AddGenreID(id genre.GenreID)    { v.genresID.Add(id) }
func (v *Video) RemoveGenreID(id genre.GenreID) { v.genresID.Remove(id) }
func (v *Video) SyncGenresID(ids []genre.GenreID) error {
	return v.genresID.Sync("genres_id", ids)
}

func (v *Video) AddCastMemberID(id castmember.CastMemberID)    { v.castMembersID.Add(id) }
func (v *Video) RemoveCastMemberID(id castmember.CastMemberID) { v.castMembersID.Remove(id) }
func (v *Video) SyncCastMembersID(ids []castmember.CastMemberID) error {
	return v.castMembersID.Sync("cast_members_id", ids)
}

// ============================================================================
// Getters
// ============================================================================
func (v *Video) ID() VideoID                 { return v.id }
func (v *Video) EntityID() shared.Identifier { return v.id }
func (v *Video) Title() string               { return v.title }
func (v *Video) Description() string         { return v.description }
func (v *Video) YearLaunched() int           { return v.yearLaunched }
func (v *Video) Duration() int               { return v.duration }
func (v *Video) Rating() Rating              { return v.rating }
func (v *Video) IsOpened() bool              { return v.isOpened }
func (v *Video) IsPublished() bool           { return v.isPublished }
func (v *Video) CreatedAt() time.Time        { return v.createdAt }

func (v *Video) CategoriesID() []category.CategoryID      { return v.categoriesID.Values() }
func (v *Video) GenresID() []genre.GenreID                { return v.genresID.Values() }
func (v *Video) CastMembersID() []castmember.CastMemberID { return v.castMembersID.Values() }

func (v *Video) Equals(other shared.Entity) bool { return shared.SameEntity(v, other) }

func (v *Video) Clone() *Video {
	cp := *v
	cp.AggregateRoot = shared.NewAggregateRoot()
	cp.categoriesID = v.categoriesID.Clone()
	cp.genresID = v.genresID.Clone()
	cp.castMembersID = v.castMembersID.Clone()
	return &cp
}

// ReconstructionDTO 仅供仓储重建使用
type ReconstructionDTO struct {
	ID            string
	Title         string
	Description   string
	YearLaunched  int
	Duration      int
	Rating        string
	IsOpened      bool
	IsPublished   bool
	CategoriesID  []string
	GenresID      []string
	CastMembersID []string
	CreatedAt     time.Time
}

func RebuildFromDTO(dto ReconstructionDTO) (*Video, error) {
	id, err := ParseVideoID(dto.ID)
	if err != nil {
		return nil, err
	}
	categoriesID, err := category.ParseCategoryIDs(dto.CategoriesID)
	if err != nil {
		return nil, err
	}
	genresID, err := genre.ParseGenreIDs(dto.GenresID)
	if err != nil {
		return nil, err
	}
	castMembersID, err := castmember.ParseCastMemberIDs(dto.CastMembersID)
	if err != nil {
		return nil, err
	}
	createdAt := dto.CreatedAt
	v := build(Props{
		ID:            &id,
		Title:         dto.Title,
		Description:   dto.Description,
		YearLaunched:  dto.YearLaunched,
		Duration:      dto.Duration,
		Rating:        Rating(dto.Rating),
		IsOpened:      dto.IsOpened,
		IsPublished:   dto.IsPublished,
		CategoriesID:  categoriesID,
		GenresID:      genresID,
		CastMembersID: castMembersID,
		CreatedAt:     &createdAt,
	})
	v.validate()
	rating, ratingErr := NewRating(dto.Rating).AsArray()
	if ratingErr != nil {
		v.Notification().AddError(ratingErr.Error(), "rating")
	}
	v.rating = rating
	if v.Notification().HasErrors() {
		return nil, shared.NewLoadEntityError(v.Notification().Errors())
	}
	return v, nil
}

var _ shared.Aggregate = (*Video)(nil)
