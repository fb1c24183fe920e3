package gormstore

import (
	"context"
	"fmt"

	"catalog/domain/shared"
	"catalog/infrastructure/persistence"
	"catalog/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UnitOfWork implements the Unit of Work pattern with GORM
// It manages database transactions and collects domain events from aggregates
type UnitOfWork struct {
	db               *gorm.DB
	aggregates       []shared.Aggregate
	outboxRepository *OutboxRepository
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{
		db:               db,
		aggregates:       make([]shared.Aggregate, 0),
		outboxRepository: NewOutboxRepository(db),
	}
}

// Execute runs fn inside a database transaction
//  1. Begins a transaction and injects it into context for repositories
//  2. fn 返回错误时回滚，并原样返回该错误（不包装、不重试）
//  3. Saves events of registered aggregates to the outbox in the same transaction
//  4. Commits
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	u.aggregates = make([]shared.Aggregate, 0)
	log := logger.FromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		uowTransactions.WithLabelValues("begin_failed").Inc()
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	txCtx := persistence.ContextWithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		tx.Rollback()
		uowTransactions.WithLabelValues("rolled_back").Inc()
		log.Debug("unit of work rolled back", zap.Error(err))
		return err
	}

	saved := 0
	for _, agg := range u.aggregates {
		for _, event := range agg.PullEvents() {
			if err := u.outboxRepository.SaveEvent(txCtx, event); err != nil {
				tx.Rollback()
				uowTransactions.WithLabelValues("rolled_back").Inc()
				return err
			}
			saved++
		}
	}

	if err := tx.Commit().Error; err != nil {
		uowTransactions.WithLabelValues("commit_failed").Inc()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	uowTransactions.WithLabelValues("committed").Inc()
	log.Debug("unit of work committed",
		zap.Int("aggregates", len(u.aggregates)),
		zap.Int("events", saved))
	return nil
}

// RegisterNew registers a newly created aggregate root for event collection
func (u *UnitOfWork) RegisterNew(aggregate shared.Aggregate) {
	u.aggregates = append(u.aggregates, aggregate)
}

// RegisterDirty registers a modified aggregate root for event collection
func (u *UnitOfWork) RegisterDirty(aggregate shared.Aggregate) {
	u.aggregates = append(u.aggregates, aggregate)
}

// RegisterRemoved registers a deleted aggregate root for event collection
func (u *UnitOfWork) RegisterRemoved(aggregate shared.Aggregate) {
	u.aggregates = append(u.aggregates, aggregate)
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)
