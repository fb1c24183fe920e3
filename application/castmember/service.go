package castmember

import (
	"context"

	"catalog/application/common"
	"catalog/domain/castmember"
	"catalog/domain/shared"
)

// ApplicationService Cast member application service
type ApplicationService struct {
	castMemberRepo castmember.Repository
	uowFactory     shared.UnitOfWorkFactory
}

func NewApplicationService(castMemberRepo castmember.Repository, uowFactory shared.UnitOfWorkFactory) *ApplicationService {
	return &ApplicationService{
		castMemberRepo: castMemberRepo,
		uowFactory:     uowFactory,
	}
}

// Create 非法 type 与其他字段错误一起通过 EntityValidationError 返回
func (s *ApplicationService) Create(ctx context.Context, in CreateCastMemberInput) (*CastMemberOutput, error) {
	if err := common.ValidateInput(in); err != nil {
		return nil, err
	}

	m := castmember.NewCastMember(castmember.Props{
		Name: in.Name,
		Type: castmember.CastMemberType(in.Type),
	})
	if err := m.Notification().Err(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.castMemberRepo.Insert(ctx, m); err != nil {
			return err
		}
		uow.RegisterNew(m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := ToOutput(m)
	return &out, nil
}

func (s *ApplicationService) Update(ctx context.Context, in UpdateCastMemberInput) (*CastMemberOutput, error) {
	if err := common.ValidateInput(in); err != nil {
		return nil, err
	}
	id, err := castmember.ParseCastMemberID(in.ID)
	if err != nil {
		return nil, err
	}

	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		m.ChangeName(*in.Name)
	}
	if in.Type != nil {
		m.ChangeType(castmember.CastMemberType(*in.Type))
	}
	if err := m.Notification().Err(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.castMemberRepo.Update(ctx, m); err != nil {
			return err
		}
		uow.RegisterDirty(m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := ToOutput(m)
	return &out, nil
}

func (s *ApplicationService) Get(ctx context.Context, rawID string) (*CastMemberOutput, error) {
	id, err := castmember.ParseCastMemberID(rawID)
	if err != nil {
		return nil, err
	}
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToOutput(m)
	return &out, nil
}

func (s *ApplicationService) Delete(ctx context.Context, rawID string) error {
	id, err := castmember.ParseCastMemberID(rawID)
	if err != nil {
		return err
	}
	return s.uowFactory.New().Execute(ctx, func(ctx context.Context) error {
		return s.castMemberRepo.Delete(ctx, id)
	})
}

// List type 过滤值非法时返回 SearchValidationError
func (s *ApplicationService) List(ctx context.Context, in ListCastMembersInput) (common.PaginationOutput[CastMemberOutput], error) {
	params, err := castmember.NewSearchParams(in.SearchInput, in.Filter)
	if err != nil {
		return common.PaginationOutput[CastMemberOutput]{}, err
	}
	result, err := s.castMemberRepo.Search(ctx, params)
	if err != nil {
		return common.PaginationOutput[CastMemberOutput]{}, err
	}
	return common.NewPaginationOutput(toOutputs(result.Items()), result), nil
}

func (s *ApplicationService) find(ctx context.Context, id castmember.CastMemberID) (*castmember.CastMember, error) {
	m, err := s.castMemberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, shared.NewNotFoundError(castmember.EntityName, id.String())
	}
	return m, nil
}
