package gormstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"catalog/domain/category"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnitOfWork_Commit 提交时聚合事件与业务数据一起写入 outbox
func TestUnitOfWork_Commit(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	factory := NewUnitOfWorkFactory(db)

	committed := testutil.ToFloat64(uowTransactions.WithLabelValues("committed"))
	saved := testutil.ToFloat64(outboxEvents.WithLabelValues("category.created"))

	c := category.NewCategory(category.Props{Name: "Movie"})
	uow := factory.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		if err := repo.Insert(ctx, c); err != nil {
			return err
		}
		uow.RegisterNew(c)
		return nil
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, c.ID())
	require.NoError(t, err)
	require.NotNil(t, found)

	outbox := NewOutboxRepository(db)
	pending, err := outbox.PendingEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "category.created", pending[0].EventType)
	assert.Equal(t, c.ID().String(), pending[0].AggregateID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(pending[0].Payload), &payload))
	assert.Equal(t, "Movie", payload["data"].(map[string]any)["name"])

	require.NoError(t, outbox.MarkEventPublished(ctx, pending[0].ID))
	pending, err = outbox.PendingEvents(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Error(t, outbox.MarkEventPublished(ctx, "missing"))

	assert.Equal(t, committed+1, testutil.ToFloat64(uowTransactions.WithLabelValues("committed")))
	assert.Equal(t, saved+1, testutil.ToFloat64(outboxEvents.WithLabelValues("category.created")))
}

// TestUnitOfWork_Rollback fn 失败时回滚并原样返回错误
func TestUnitOfWork_Rollback(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	rolledBack := testutil.ToFloat64(uowTransactions.WithLabelValues("rolled_back"))

	boom := errors.New("boom")
	c := category.NewCategory(category.Props{Name: "Movie"})
	uow := NewUnitOfWorkFactory(db).New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		if err := repo.Insert(ctx, c); err != nil {
			return err
		}
		uow.RegisterNew(c)
		return boom
	})
	assert.Same(t, boom, err)

	found, err := repo.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	pending, err := NewOutboxRepository(db).PendingEvents(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, rolledBack+1, testutil.ToFloat64(uowTransactions.WithLabelValues("rolled_back")))
}

// TestUnitOfWork_MultipleAggregates 同一事务内写多个聚合
func TestUnitOfWork_MultipleAggregates(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	a := category.NewCategory(category.Props{Name: "a"})
	b := category.NewCategory(category.Props{Name: "b"})
	uow := NewUnitOfWorkFactory(db).New()
	require.NoError(t, uow.Execute(ctx, func(ctx context.Context) error {
		if err := repo.BulkInsert(ctx, []*category.Category{a, b}); err != nil {
			return err
		}
		uow.RegisterNew(a)
		uow.RegisterNew(b)
		return nil
	}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := NewOutboxRepository(db).PendingEvents(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}
