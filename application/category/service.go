/*
Package category 分类用例

应用服务只负责编排：
 1. 校验入参（validator tag）
 2. 调用聚合方法，聚合把校验错误写进自己的 Notification
 3. 每个写操作从工厂获取一个新的 UnitOfWork，事件由 UoW 收集
*/
package category

import (
	"context"

	"catalog/application/common"
	"catalog/domain/category"
	"catalog/domain/shared"
)

// ApplicationService Category application service
type ApplicationService struct {
	categoryRepo category.Repository
	uowFactory   shared.UnitOfWorkFactory
}

func NewApplicationService(categoryRepo category.Repository, uowFactory shared.UnitOfWorkFactory) *ApplicationService {
	return &ApplicationService{
		categoryRepo: categoryRepo,
		uowFactory:   uowFactory,
	}
}

func (s *ApplicationService) Create(ctx context.Context, in CreateCategoryInput) (*CategoryOutput, error) {
	if err := common.ValidateInput(in); err != nil {
		return nil, err
	}

	c := category.NewCategory(category.Props{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	})
	if err := c.Notification().Err(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.categoryRepo.Insert(ctx, c); err != nil {
			return err
		}
		uow.RegisterNew(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := ToOutput(c)
	return &out, nil
}

func (s *ApplicationService) Update(ctx context.Context, in UpdateCategoryInput) (*CategoryOutput, error) {
	if err := common.ValidateInput(in); err != nil {
		return nil, err
	}
	id, err := category.ParseCategoryID(in.ID)
	if err != nil {
		return nil, err
	}

	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		c.ChangeName(*in.Name)
	}
	if in.Description != nil {
		c.ChangeDescription(in.Description)
	}
	if in.IsActive != nil {
		if *in.IsActive {
			c.Activate()
		} else {
			c.Deactivate()
		}
	}
	if err := c.Notification().Err(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.categoryRepo.Update(ctx, c); err != nil {
			return err
		}
		uow.RegisterDirty(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := ToOutput(c)
	return &out, nil
}

func (s *ApplicationService) Get(ctx context.Context, rawID string) (*CategoryOutput, error) {
	id, err := category.ParseCategoryID(rawID)
	if err != nil {
		return nil, err
	}
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToOutput(c)
	return &out, nil
}

func (s *ApplicationService) Delete(ctx context.Context, rawID string) error {
	id, err := category.ParseCategoryID(rawID)
	if err != nil {
		return err
	}
	return s.uowFactory.New().Execute(ctx, func(ctx context.Context) error {
		return s.categoryRepo.Delete(ctx, id)
	})
}

func (s *ApplicationService) List(ctx context.Context, in ListCategoriesInput) (common.PaginationOutput[CategoryOutput], error) {
	params := category.NewSearchParams(in.SearchInput, in.Filter)
	result, err := s.categoryRepo.Search(ctx, params)
	if err != nil {
		return common.PaginationOutput[CategoryOutput]{}, err
	}
	return common.NewPaginationOutput(toOutputs(result.Items()), result), nil
}

// ListAll 不分页，按存储顺序返回全部分类
func (s *ApplicationService) ListAll(ctx context.Context) ([]CategoryOutput, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(categories), nil
}

func (s *ApplicationService) find(ctx context.Context, id category.CategoryID) (*category.Category, error) {
	c, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.NewNotFoundError(category.EntityName, id.String())
	}
	return c, nil
}
