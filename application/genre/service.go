package genre

import (
	"context"

	"catalog/application/common"
	"catalog/application/validation"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
)

// ApplicationService Genre application service
// 关联分类的存在性由 CategoriesIDExistsValidator 校验，错误折叠进 genre 的 Notification（key: categories_id）
type ApplicationService struct {
	genreRepo           genre.Repository
	categoryRepo        category.Repository
	categoriesValidator *validation.CategoriesIDExistsValidator
	uowFactory          shared.UnitOfWorkFactory
}

func NewApplicationService(
	genreRepo genre.Repository,
	categoryRepo category.Repository,
	uowFactory shared.UnitOfWorkFactory,
) *ApplicationService {
	return &ApplicationService{
		genreRepo:           genreRepo,
		categoryRepo:        categoryRepo,
		categoriesValidator: validation.NewCategoriesIDExistsValidator(categoryRepo),
		uowFactory:          uowFactory,
	}
}

func (s *ApplicationService) Create(ctx context.Context, in CreateGenreInput) (*GenreOutput, error) {
	if err := common.ValidateInput(in); err != nil {
		return nil, err
	}

	validated, err := s.categoriesValidator.Validate(ctx, in.CategoriesID)
	if err != nil {
		return nil, err
	}
	categoriesID, categoryErrs := validated.AsArray()

	g := genre.NewGenre(genre.Props{
		Name:         in.Name,
		CategoriesID: categoriesID,
		IsActive:     in.IsActive,
	})
	if len(categoryErrs) > 0 {
		g.Notification().SetError("categories_id", common.MessagesOf(categoryErrs)...)
	}
	if err := g.Notification().Err(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.genreRepo.Insert(ctx, g); err != nil {
			return err
		}
		uow.RegisterNew(g)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.compose(ctx, g)
}

// Update name / is_active / categories_id 按需修改；categories_id 使用 sync 整体替换
func (s *ApplicationService) Update(ctx context.Context, in UpdateGenreInput) (*GenreOutput, error) {
	if err := common.ValidateInput(in); err != nil {
		return nil, err
	}
	id, err := genre.ParseGenreID(in.ID)
	if err != nil {
		return nil, err
	}

	g, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		g.ChangeName(*in.Name)
	}
	if in.IsActive != nil {
		if *in.IsActive {
			g.Activate()
		} else {
			g.Deactivate()
		}
	}
	if in.CategoriesID != nil {
		validated, err := s.categoriesValidator.Validate(ctx, in.CategoriesID)
		if err != nil {
			return nil, err
		}
		categoriesID, categoryErrs := validated.AsArray()
		if len(categoryErrs) > 0 {
			g.Notification().SetError("categories_id", common.MessagesOf(categoryErrs)...)
		} else if err := g.SyncCategoriesID(categoriesID); err != nil {
			g.Notification().AddError(err.Error(), "categories_id")
		}
	}
	if err := g.Notification().Err(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.genreRepo.Update(ctx, g); err != nil {
			return err
		}
		uow.RegisterDirty(g)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.compose(ctx, g)
}

func (s *ApplicationService) Get(ctx context.Context, rawID string) (*GenreOutput, error) {
	id, err := genre.ParseGenreID(rawID)
	if err != nil {
		return nil, err
	}
	g, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, g)
}

func (s *ApplicationService) Delete(ctx context.Context, rawID string) error {
	id, err := genre.ParseGenreID(rawID)
	if err != nil {
		return err
	}
	return s.uowFactory.New().Execute(ctx, func(ctx context.Context) error {
		return s.genreRepo.Delete(ctx, id)
	})
}

// List 当前页所有 genre 引用的分类只查询一次
func (s *ApplicationService) List(ctx context.Context, in ListGenresInput) (common.PaginationOutput[GenreOutput], error) {
	params, err := genre.NewSearchParams(in.SearchInput, in.Filter)
	if err != nil {
		return common.PaginationOutput[GenreOutput]{}, err
	}
	result, err := s.genreRepo.Search(ctx, params)
	if err != nil {
		return common.PaginationOutput[GenreOutput]{}, err
	}

	genres := result.Items()
	categories, err := s.findCategories(ctx, relatedCategoryIDs(genres...))
	if err != nil {
		return common.PaginationOutput[GenreOutput]{}, err
	}

	items := make([]GenreOutput, len(genres))
	for i, g := range genres {
		items[i] = ToOutput(g, categories)
	}
	return common.NewPaginationOutput(items, result), nil
}

func (s *ApplicationService) compose(ctx context.Context, g *genre.Genre) (*GenreOutput, error) {
	categories, err := s.findCategories(ctx, g.CategoriesID())
	if err != nil {
		return nil, err
	}
	out := ToOutput(g, categories)
	return &out, nil
}

func (s *ApplicationService) findCategories(ctx context.Context, ids []category.CategoryID) ([]*category.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.categoryRepo.FindByIDs(ctx, ids)
}

func (s *ApplicationService) find(ctx context.Context, id genre.GenreID) (*genre.Genre, error) {
	g, err := s.genreRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, shared.NewNotFoundError(genre.EntityName, id.String())
	}
	return g, nil
}
