package shared

import "context"

// ExistsResult ExistsByIDs 的结果：存在的与不存在的 id 分开返回
type ExistsResult[ID Identifier] struct {
	Exists    []ID
	NotExists []ID
}

// Repository 聚合仓储的公共契约
// DDD principles:
// 1. Repository only responsible for aggregate root persistence
// 2. Include context.Context to support timeout, cancellation and transaction
// 3. 事务由 UnitOfWork 通过 context 传入，仓储自身不开启跨聚合事务
type Repository[E Entity, ID Identifier] interface {
	Insert(ctx context.Context, entity E) error
	BulkInsert(ctx context.Context, entities []E) error

	// Update id 不存在时返回 NotFoundError
	Update(ctx context.Context, entity E) error

	// Delete id 不存在时返回 NotFoundError
	Delete(ctx context.Context, id ID) error

	// FindByID 不存在时返回零值（nil）且 error 为 nil
	FindByID(ctx context.Context, id ID) (E, error)
	FindAll(ctx context.Context) ([]E, error)

	// FindByIDs 返回存在的子集，不存在的 id 被忽略
	FindByIDs(ctx context.Context, ids []ID) ([]E, error)

	// ExistsByIDs ids 为空时返回 InvalidArgumentError
	ExistsByIDs(ctx context.Context, ids []ID) (ExistsResult[ID], error)
}

// SearchableRepository 支持过滤、排序、分页的仓储
type SearchableRepository[E Entity, ID Identifier, F any] interface {
	Repository[E, ID]

	// SortableFields 允许排序的字段白名单
	SortableFields() []string
	Search(ctx context.Context, params SearchParams[F]) (SearchResult[E], error)
}

// ErrEmptyIDs ExistsByIDs 的空参数错误
func ErrEmptyIDs() error {
	return NewInvalidArgumentError("ids must be an array with at least one element")
}
