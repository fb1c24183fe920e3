/*
Package validation 关联 id 存在性校验

Genre / Video 引用其他聚合时，先确认被引用的 id 全部存在：
  - 非法 id 直接返回 InvalidIdentifierError（作为 error 返回，不进入 Either）
  - 只要有一个 id 不存在，成功分支为空，失败分支按 not_exists 顺序为每个缺失 id 给出一个 NotFoundError
  - 全部存在时成功分支按仓储 ExistsByIDs 返回的顺序给出 typed id
*/
package validation

import (
	"context"

	"catalog/domain/castmember"
	"catalog/domain/category"
	"catalog/domain/genre"
	"catalog/domain/shared"
)

// existsChecker 仓储中校验器用到的部分
type existsChecker[ID shared.Identifier] interface {
	ExistsByIDs(ctx context.Context, ids []ID) (shared.ExistsResult[ID], error)
}

// IDsExistsValidator 通用的关联 id 存在性校验器
type IDsExistsValidator[ID shared.Identifier] struct {
	entityName string
	parse      func(string) (ID, error)
	repo       existsChecker[ID]
}

func NewIDsExistsValidator[ID shared.Identifier](entityName string, parse func(string) (ID, error), repo existsChecker[ID]) *IDsExistsValidator[ID] {
	return &IDsExistsValidator[ID]{entityName: entityName, parse: parse, repo: repo}
}

func (v *IDsExistsValidator[ID]) Validate(ctx context.Context, rawIDs []string) (shared.Either[[]ID, []error], error) {
	ids := make([]ID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := v.parse(raw)
		if err != nil {
			return shared.Either[[]ID, []error]{}, err
		}
		ids = append(ids, id)
	}

	result, err := v.repo.ExistsByIDs(ctx, ids)
	if err != nil {
		return shared.Either[[]ID, []error]{}, err
	}

	if len(result.NotExists) > 0 {
		errs := make([]error, len(result.NotExists))
		for i, id := range result.NotExists {
			errs[i] = shared.NewNotFoundError(v.entityName, id.String())
		}
		return shared.Fail[[]ID](errs), nil
	}
	return shared.Ok[[]ID, []error](result.Exists), nil
}

// ============================================================================
// 具体校验器
// ============================================================================

type (
	CategoriesIDExistsValidator  = IDsExistsValidator[category.CategoryID]
	GenresIDExistsValidator      = IDsExistsValidator[genre.GenreID]
	CastMembersIDExistsValidator = IDsExistsValidator[castmember.CastMemberID]
)

func NewCategoriesIDExistsValidator(repo category.Repository) *CategoriesIDExistsValidator {
	return NewIDsExistsValidator[category.CategoryID](category.EntityName, category.ParseCategoryID, repo)
}

func NewGenresIDExistsValidator(repo genre.Repository) *GenresIDExistsValidator {
	return NewIDsExistsValidator[genre.GenreID](genre.EntityName, genre.ParseGenreID, repo)
}

func NewCastMembersIDExistsValidator(repo castmember.Repository) *CastMembersIDExistsValidator {
	return NewIDsExistsValidator[castmember.CastMemberID](castmember.EntityName, castmember.ParseCastMemberID, repo)
}
