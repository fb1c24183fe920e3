package memory

import (
	"context"
	"slices"
	"sync"

	"catalog/domain/shared"
	"catalog/pkg/logger"

	"go.uber.org/zap"
)

// EventLog 内存版 outbox，记录已提交工作单元产生的事件
type EventLog struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func NewEventLog() *EventLog {
	return &EventLog{events: make([]shared.DomainEvent, 0)}
}

func (l *EventLog) SaveEvent(ctx context.Context, event shared.DomainEvent) error {
	if err := shared.ValidateEvent(event); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	return nil
}

// Events 返回已记录事件的副本
func (l *EventLog) Events() []shared.DomainEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.events)
}

var _ shared.OutboxRepository = (*EventLog)(nil)

// Checkpointer 可参与内存工作单元回滚的仓储
type Checkpointer interface {
	Checkpoint() (restore func())
}

// UnitOfWork 内存工作单元
// fn 失败时把参与的仓储恢复到执行前的状态，并原样返回错误；
// 同一组仓储上的并发工作单元之间没有隔离
type UnitOfWork struct {
	aggregates   []shared.Aggregate
	outbox       *EventLog
	participants []Checkpointer
}

func NewUnitOfWork(outbox *EventLog, participants ...Checkpointer) *UnitOfWork {
	if outbox == nil {
		outbox = NewEventLog()
	}
	return &UnitOfWork{
		aggregates:   make([]shared.Aggregate, 0),
		outbox:       outbox,
		participants: participants,
	}
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	u.aggregates = make([]shared.Aggregate, 0)

	restores := make([]func(), len(u.participants))
	for i, p := range u.participants {
		restores[i] = p.Checkpoint()
	}
	rollback := func() {
		for _, restore := range restores {
			restore()
		}
	}

	if err := fn(ctx); err != nil {
		rollback()
		logger.FromContext(ctx).Debug("unit of work rolled back", zap.Error(err))
		return err
	}

	for _, agg := range u.aggregates {
		for _, event := range agg.PullEvents() {
			if err := u.outbox.SaveEvent(ctx, event); err != nil {
				rollback()
				return err
			}
			logger.FromContext(ctx).Debug("event recorded",
				zap.String("event", event.EventName()),
				zap.String("aggregate_id", event.GetAggregateID()))
		}
	}
	return nil
}

// Aggregates 当前登记的聚合（测试辅助）
func (u *UnitOfWork) Aggregates() []shared.Aggregate {
	return slices.Clone(u.aggregates)
}

func (u *UnitOfWork) RegisterNew(aggregate shared.Aggregate) {
	u.aggregates = append(u.aggregates, aggregate)
}

func (u *UnitOfWork) RegisterDirty(aggregate shared.Aggregate) {
	u.aggregates = append(u.aggregates, aggregate)
}

func (u *UnitOfWork) RegisterRemoved(aggregate shared.Aggregate) {
	u.aggregates = append(u.aggregates, aggregate)
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWorkFactory 每次 New 返回独立的工作单元，共享同一个 EventLog 和参与回滚的仓储
type UnitOfWorkFactory struct {
	outbox       *EventLog
	participants []Checkpointer
}

func NewUnitOfWorkFactory(outbox *EventLog, participants ...Checkpointer) *UnitOfWorkFactory {
	if outbox == nil {
		outbox = NewEventLog()
	}
	return &UnitOfWorkFactory{outbox: outbox, participants: participants}
}

func (f *UnitOfWorkFactory) New() shared.UnitOfWork {
	return NewUnitOfWork(f.outbox, f.participants...)
}

// EventLog 工厂共享的事件日志
func (f *UnitOfWorkFactory) EventLog() *EventLog {
	return f.outbox
}

var _ shared.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
