/*
Package memory 仓储的内存实现

用于开发、测试与 CLI 的 memory 驱动。过滤、排序、分页的结果必须与 gormstore 的实现一致。
*/
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"catalog/domain/shared"
)

// cloner 聚合实现 Clone 时，仓储存取的都是副本：调用方修改聚合不会影响已存储的状态，
// 与 ORM 实现每次从数据库重建的行为一致
type cloner[E any] interface {
	Clone() E
}

func copyOf[E any](e E) E {
	if c, ok := any(e).(cloner[E]); ok {
		return c.Clone()
	}
	return e
}

func copyAll[E any](items []E) []E {
	out := make([]E, len(items))
	for i, item := range items {
		out[i] = copyOf(item)
	}
	return out
}

// Repository 基于有序切片的通用仓储
type Repository[E shared.Entity, ID shared.Identifier] struct {
	mu         sync.RWMutex
	items      []E
	entityName string
}

func NewRepository[E shared.Entity, ID shared.Identifier](entityName string) *Repository[E, ID] {
	return &Repository[E, ID]{
		items:      make([]E, 0),
		entityName: entityName,
	}
}

// Insert id 已存在时返回 ConflictError
func (r *Repository[E, ID]) Insert(ctx context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id := entity.EntityID().String(); r.indexOf(id) >= 0 {
		return shared.NewConflictError(r.entityName, id, shared.ErrConflict)
	}
	r.items = append(r.items, copyOf(entity))
	return nil
}

// BulkInsert 全部成功或全部不写入
func (r *Repository[E, ID]) BulkInsert(ctx context.Context, entities []E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{}, len(entities))
	for _, entity := range entities {
		id := entity.EntityID().String()
		_, dup := seen[id]
		if dup || r.indexOf(id) >= 0 {
			return shared.NewConflictError(r.entityName, id, shared.ErrConflict)
		}
		seen[id] = struct{}{}
	}
	r.items = append(r.items, copyAll(entities)...)
	return nil
}

func (r *Repository[E, ID]) Update(ctx context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(entity.EntityID().String())
	if idx < 0 {
		return shared.NewNotFoundError(r.entityName, entity.EntityID().String())
	}
	r.items[idx] = copyOf(entity)
	return nil
}

func (r *Repository[E, ID]) Delete(ctx context.Context, id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id.String())
	if idx < 0 {
		return shared.NewNotFoundError(r.entityName, id.String())
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	return nil
}

func (r *Repository[E, ID]) FindByID(ctx context.Context, id ID) (E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero E
	idx := r.indexOf(id.String())
	if idx < 0 {
		return zero, nil
	}
	return copyOf(r.items[idx]), nil
}

func (r *Repository[E, ID]) FindAll(ctx context.Context) ([]E, error) {
	return r.snapshot(), nil
}

// FindByIDs 按存储顺序返回命中的实体
func (r *Repository[E, ID]) FindByIDs(ctx context.Context, ids []ID) ([]E, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id.String()] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]E, 0, len(ids))
	for _, item := range r.items {
		if _, ok := wanted[item.EntityID().String()]; ok {
			out = append(out, copyOf(item))
		}
	}
	return out, nil
}

// ExistsByIDs 按输入顺序划分，重复的 id 只出现一次
func (r *Repository[E, ID]) ExistsByIDs(ctx context.Context, ids []ID) (shared.ExistsResult[ID], error) {
	if len(ids) == 0 {
		return shared.ExistsResult[ID]{}, shared.ErrEmptyIDs()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := shared.ExistsResult[ID]{Exists: make([]ID, 0), NotExists: make([]ID, 0)}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		key := id.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if r.indexOf(key) >= 0 {
			result.Exists = append(result.Exists, id)
		} else {
			result.NotExists = append(result.NotExists, id)
		}
	}
	return result, nil
}

// Checkpoint 记录当前内容，返回的 restore 把仓储恢复到记录时的状态
// 已存储的聚合不会被原地修改（写入时存副本），浅拷贝切片即可
func (r *Repository[E, ID]) Checkpoint() (restore func()) {
	r.mu.RLock()
	saved := slices.Clone(r.items)
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.items = saved
	}
}

// Items 测试辅助：返回当前存储的副本
func (r *Repository[E, ID]) Items() []E {
	return r.snapshot()
}

func (r *Repository[E, ID]) snapshot() []E {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyAll(r.items)
}

// indexOf 调用方需持有锁
func (r *Repository[E, ID]) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(e E) bool { return e.EntityID().String() == id })
}

// ============================================================================
// 可搜索仓储：filter → sort → paginate
// ============================================================================

// Comparator 返回负数/零/正数，与 strings.Compare 语义相同
type Comparator[E any] func(a, b E) int

// SortField 可排序字段及其比较函数
type SortField[E any] struct {
	Name    string
	Compare Comparator[E]
}

// SearchableRepository 通用的内存搜索实现
// toSpec 把归一化后的过滤条件转换成领域规约；filter 为 null 时不会被调用
type SearchableRepository[E shared.Entity, ID shared.Identifier, F any] struct {
	*Repository[E, ID]

	fields    []SortField[E]
	toSpec    func(F) shared.Specification[E]
	createdAt func(E) time.Time
}

func NewSearchableRepository[E shared.Entity, ID shared.Identifier, F any](
	entityName string,
	toSpec func(F) shared.Specification[E],
	createdAt func(E) time.Time,
	fields ...SortField[E],
) *SearchableRepository[E, ID, F] {
	return &SearchableRepository[E, ID, F]{
		Repository: NewRepository[E, ID](entityName),
		fields:     fields,
		toSpec:     toSpec,
		createdAt:  createdAt,
	}
}

func (r *SearchableRepository[E, ID, F]) SortableFields() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

func (r *SearchableRepository[E, ID, F]) Search(ctx context.Context, params shared.SearchParams[F]) (shared.SearchResult[E], error) {
	if err := ctx.Err(); err != nil {
		return shared.SearchResult[E]{}, err
	}

	filtered := r.applyFilter(ctx, r.snapshot(), params)
	sorted := r.applySort(filtered, params.Sort(), params.SortDir())
	page := r.applyPaginate(sorted, params.Page(), params.PerPage())

	return shared.NewSearchResult(page, len(filtered), params.Page(), params.PerPage()), nil
}

func (r *SearchableRepository[E, ID, F]) applyFilter(ctx context.Context, items []E, params shared.SearchParams[F]) []E {
	filter, ok := params.Filter()
	if !ok {
		return items
	}
	spec := r.toSpec(filter)
	if spec == nil {
		return items
	}
	out := make([]E, 0, len(items))
	for _, item := range items {
		if spec.IsSatisfiedBy(ctx, item) {
			out = append(out, item)
		}
	}
	return out
}

// applySort 字段不在白名单内（包括未指定）时按 created_at 倒序，忽略 sort_dir
// 使用稳定排序，相等元素保持存储顺序
func (r *SearchableRepository[E, ID, F]) applySort(items []E, sort string, dir shared.SortDirection) []E {
	sorted := slices.Clone(items)

	idx := slices.IndexFunc(r.fields, func(f SortField[E]) bool { return f.Name == sort })
	if sort == "" || idx < 0 {
		slices.SortStableFunc(sorted, func(a, b E) int {
			return r.createdAt(b).Compare(r.createdAt(a))
		})
		return sorted
	}

	cmp := r.fields[idx].Compare
	slices.SortStableFunc(sorted, func(a, b E) int {
		if dir == shared.SortDesc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return sorted
}

func (r *SearchableRepository[E, ID, F]) applyPaginate(items []E, page, perPage int) []E {
	start := (page - 1) * perPage
	if start >= len(items) {
		return make([]E, 0)
	}
	end := min(start+perPage, len(items))
	return items[start:end]
}
