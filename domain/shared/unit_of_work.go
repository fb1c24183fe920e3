package shared

import "context"

// UnitOfWork 管理事务边界与聚合事件收集。
// 每个应用操作通过 UnitOfWorkFactory 获取独立实例，不跨操作共享。
type UnitOfWork interface {
	// Execute 在一个事务内执行 fn；fn 返回错误时回滚并原样返回该错误
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
	RegisterNew(aggregate Aggregate)
	RegisterDirty(aggregate Aggregate)
	RegisterRemoved(aggregate Aggregate)
}

type UnitOfWorkFactory interface {
	New() UnitOfWork
}

// Do 在工作单元内执行 fn 并返回其结果
func Do[T any](ctx context.Context, uow UnitOfWork, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := uow.Execute(ctx, func(txCtx context.Context) error {
		var err error
		result, err = fn(txCtx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

type OutboxRepository interface {
	SaveEvent(ctx context.Context, event DomainEvent) error
}
