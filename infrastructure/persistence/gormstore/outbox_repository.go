package gormstore

import (
	"context"
	"fmt"

	"catalog/domain/shared"
	"catalog/infrastructure/persistence/gormstore/po"

	"gorm.io/gorm"
)

// OutboxRepository GORM implementation of outbox repository
// 事件与业务数据在同一事务中写入 outbox_events；投递由外部进程负责
type OutboxRepository struct {
	base
}

func NewOutboxRepository(db *gorm.DB) *OutboxRepository {
	return &OutboxRepository{base{db: db}}
}

// SaveEvent Save domain event to outbox table
// Uses transaction from context when called within UoW.Execute()
func (r *OutboxRepository) SaveEvent(ctx context.Context, event shared.DomainEvent) error {
	if err := shared.ValidateEvent(event); err != nil {
		return fmt.Errorf("invalid domain event: %w", err)
	}

	outboxPO, err := po.FromDomainEvent(event)
	if err != nil {
		return fmt.Errorf("failed to convert domain event: %w", err)
	}
	if err := r.getDB(ctx).Create(outboxPO).Error; err != nil {
		return fmt.Errorf("failed to save event to outbox: %w", err)
	}

	outboxEvents.WithLabelValues(event.EventName()).Inc()
	return nil
}

// PendingEvents 按写入顺序返回尚未投递的事件
func (r *OutboxRepository) PendingEvents(ctx context.Context, limit int) ([]*po.OutboxEventPO, error) {
	var events []*po.OutboxEventPO
	err := r.getDB(ctx).
		Where("status = ?", string(po.EventStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}
	return events, nil
}

// MarkEventPublished 外部投递进程确认后调用
func (r *OutboxRepository) MarkEventPublished(ctx context.Context, eventID string) error {
	result := r.getDB(ctx).Model(&po.OutboxEventPO{}).
		Where("id = ?", eventID).
		Update("status", string(po.EventStatusPublished))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("event not found: %s", eventID)
	}
	return nil
}

var _ shared.OutboxRepository = (*OutboxRepository)(nil)
