/*
Package video 视频用例

Create / Update 的校验分三层，全部收集后一次性返回 EntityValidationError：
 1. 入参 tag 校验
 2. 聚合字段校验（title / year_launched / duration）
 3. rating 值对象与三类关联 id 的存在性校验，错误分别折叠到
    rating / categories_id / genres_id / cast_members_id
*/
package video

import (
	"context"

	"catalog/application/common"
	"catalog/application/validation"
	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
	"catalog/domain/video"
)

// ApplicationService Video application service
type ApplicationService struct {
	videoRepo      video.Repository
	categoryRepo   category.Repository
	genreRepo      genre.Repository
	castMemberRepo castmember.Repository

	categoriesValidator  *validation.CategoriesIDExistsValidator
	genresValidator      *validation.GenresIDExistsValidator
	castMembersValidator *validation.CastMembersIDExistsValidator

	uowFactory shared.UnitOfWorkFactory
}

func NewApplicationService(
	videoRepo video.Repository,
	categoryRepo category.Repository,
	genreRepo genre.Repository,
	castMemberRepo castmember.Repository,
	uowFactory shared.UnitOfWorkFactory,
) *ApplicationService {
	return &ApplicationService{
		videoRepo:            videoRepo,
		categoryRepo:         categoryRepo,
		genreRepo:            genreRepo,
		castMemberRepo:       castMemberRepo,
		categoriesValidator:  validation.NewCategoriesIDExistsValidator(categoryRepo),
		genresValidator:      validation.NewGenresIDExistsValidator(genreRepo),
		castMembersValidator: validation.NewCastMembersIDExistsValidator(castMemberRepo),
		uowFactory:           uowFactory,
	}
}

func (s *ApplicationService) Create(ctx context.Context, in CreateVideoInput) (*VideoIDOutput, error) {
	if err := common.ValidateInput(in); err != nil {
		return nil, err
	}

	rating, ratingErr := video.NewRating(in.Rating).AsArray()

	categories, err := s.categoriesValidator.Validate(ctx, in.CategoriesID)
	if err != nil {
		return nil, err
	}
	genres, err := s.genresValidator.Validate(ctx, in.GenresID)
	if err != nil {
		return nil, err
	}
	castMembers, err := s.castMembersValidator.Validate(ctx, in.CastMembersID)
	if err != nil {
		return nil, err
	}

	v := video.NewVideo(video.Props{
		Title:         in.Title,
		Description:   in.Description,
		YearLaunched:  in.YearLaunched,
		Duration:      in.Duration,
		Rating:        rating,
		IsOpened:      in.IsOpened,
		IsPublished:   in.IsPublished,
		CategoriesID:  categories.Ok(),
		GenresID:      genres.Ok(),
		CastMembersID: castMembers.Ok(),
	})

	n := v.Notification()
	if ratingErr != nil {
		n.AddError(ratingErr.Error(), "rating")
	}
	foldRelationErrors(n, "categories_id", categories.Error())
	foldRelationErrors(n, "genres_id", genres.Error())
	foldRelationErrors(n, "cast_members_id", castMembers.Error())
	if err := n.Err(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.videoRepo.Insert(ctx, v); err != nil {
			return err
		}
		uow.RegisterNew(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &VideoIDOutput{ID: v.ID().String()}, nil
}

func (s *ApplicationService) Update(ctx context.Context, in UpdateVideoInput) (*VideoIDOutput, error) {
	if err := common.ValidateInput(in); err != nil {
		return nil, err
	}
	id, err := video.ParseVideoID(in.ID)
	if err != nil {
		return nil, err
	}

	v, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		v.ChangeTitle(*in.Title)
	}
	if in.Description != nil {
		v.ChangeDescription(*in.Description)
	}
	if in.YearLaunched != nil {
		v.ChangeYearLaunched(*in.YearLaunched)
	}
	if in.Duration != nil {
		v.ChangeDuration(*in.Duration)
	}
	if in.Rating != nil {
		rating, ratingErr := video.NewRating(*in.Rating).AsArray()
		if ratingErr != nil {
			v.Notification().AddError(ratingErr.Error(), "rating")
		} else {
			v.ChangeRating(rating)
		}
	}
	if in.IsOpened != nil {
		if *in.IsOpened {
			v.MarkAsOpened()
		} else {
			v.MarkAsNotOpened()
		}
	}
	if in.IsPublished != nil {
		if *in.IsPublished {
			v.Publish()
		} else {
			v.Unpublish()
		}
	}

	if in.CategoriesID != nil {
		if err := syncRelation(ctx, v.Notification(), "categories_id", s.categoriesValidator, in.CategoriesID, v.SyncCategoriesID); err != nil {
			return nil, err
		}
	}
	if in.GenresID != nil {
		if err := syncRelation(ctx, v.Notification(), "genres_id", s.genresValidator, in.GenresID, v.SyncGenresID); err != nil {
			return nil, err
		}
	}
	if in.CastMembersID != nil {
		if err := syncRelation(ctx, v.Notification(), "cast_members_id", s.castMembersValidator, in.CastMembersID, v.SyncCastMembersID); err != nil {
			return nil, err
		}
	}

	if err := v.Notification().Err(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.videoRepo.Update(ctx, v); err != nil {
			return err
		}
		uow.RegisterDirty(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &VideoIDOutput{ID: v.ID().String()}, nil
}

// Get 组合输出：一次 FindByIDs 取回每一类关联
func (s *ApplicationService) Get(ctx context.Context, rawID string) (*VideoOutput, error) {
	id, err := video.ParseVideoID(rawID)
	if err != nil {
		return nil, err
	}
	v, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	rel, err := s.loadRelated(ctx, v)
	if err != nil {
		return nil, err
	}
	out := ToOutput(v, rel)
	return &out, nil
}

func (s *ApplicationService) Delete(ctx context.Context, rawID string) error {
	id, err := video.ParseVideoID(rawID)
	if err != nil {
		return err
	}
	return s.uowFactory.New().Execute(ctx, func(ctx context.Context) error {
		return s.videoRepo.Delete(ctx, id)
	})
}

func (s *ApplicationService) List(ctx context.Context, in ListVideosInput) (common.PaginationOutput[VideoOutput], error) {
	params, err := video.NewSearchParams(in.SearchInput, in.Filter)
	if err != nil {
		return common.PaginationOutput[VideoOutput]{}, err
	}
	result, err := s.videoRepo.Search(ctx, params)
	if err != nil {
		return common.PaginationOutput[VideoOutput]{}, err
	}

	videos := result.Items()
	rel, err := s.loadRelated(ctx, videos...)
	if err != nil {
		return common.PaginationOutput[VideoOutput]{}, err
	}
	items := make([]VideoOutput, len(videos))
	for i, v := range videos {
		items[i] = ToOutput(v, rel)
	}
	return common.NewPaginationOutput(items, result), nil
}

func (s *ApplicationService) loadRelated(ctx context.Context, videos ...*video.Video) (related, error) {
	var (
		categoriesID  []category.CategoryID
		genresID      []genre.GenreID
		castMembersID []castmember.CastMemberID
	)
	for _, v := range videos {
		categoriesID = collectIDs(categoriesID, v.CategoriesID())
		genresID = collectIDs(genresID, v.GenresID())
		castMembersID = collectIDs(castMembersID, v.CastMembersID())
	}

	rel := related{}
	if len(categoriesID) > 0 {
		categories, err := s.categoryRepo.FindByIDs(ctx, categoriesID)
		if err != nil {
			return related{}, err
		}
		rel.categories = indexByID(categories)
	}
	if len(genresID) > 0 {
		genres, err := s.genreRepo.FindByIDs(ctx, genresID)
		if err != nil {
			return related{}, err
		}
		rel.genres = indexByID(genres)
	}
	if len(castMembersID) > 0 {
		castMembers, err := s.castMemberRepo.FindByIDs(ctx, castMembersID)
		if err != nil {
			return related{}, err
		}
		rel.castMembers = indexByID(castMembers)
	}
	return rel, nil
}

func (s *ApplicationService) find(ctx context.Context, id video.VideoID) (*video.Video, error) {
	v, err := s.videoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, shared.NewNotFoundError(video.EntityName, id.String())
	}
	return v, nil
}

// ============================================================================
// 关联校验辅助
// ============================================================================

func foldRelationErrors(n *shared.Notification, field string, errs []error) {
	if len(errs) > 0 {
		n.SetError(field, common.MessagesOf(errs)...)
	}
}

// syncRelation 校验通过才替换关联；校验失败时错误写入 field，原关联不变
func syncRelation[ID shared.Identifier](
	ctx context.Context,
	n *shared.Notification,
	field string,
	validator *validation.IDsExistsValidator[ID],
	rawIDs []string,
	sync func([]ID) error,
) error {
	validated, err := validator.Validate(ctx, rawIDs)
	if err != nil {
		return err
	}
	ids, errs := validated.AsArray()
	if len(errs) > 0 {
		foldRelationErrors(n, field, errs)
		return nil
	}
	if err := sync(ids); err != nil {
		n.AddError(err.Error(), field)
	}
	return nil
}
