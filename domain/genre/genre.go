package genre

import (
	"time"

	"catalog/domain/category"
	"catalog/domain/shared"
)

const EntityName = "Genre"

type GenreID struct {
	shared.Uuid
}

func NewGenreID() GenreID {
	return GenreID{shared.NewUuid()}
}

func ParseGenreID(id string) (GenreID, error) {
	u, err := shared.ParseUuid(id)
	if err != nil {
		return GenreID{}, err
	}
	return GenreID{u}, nil
}

func ParseGenreIDs(ids []string) ([]GenreID, error) {
	out := make([]GenreID, 0, len(ids))
	for _, raw := range ids {
		id, err := ParseGenreID(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// Genre 类型聚合根，持有所属分类的 id 集合（多对多）
// 分类本身属于另一个聚合，这里只保存引用
type Genre struct {
	shared.AggregateRoot

	id           GenreID
	name         string
	categoriesID shared.IDSet[category.CategoryID]
	isActive     bool
	createdAt    time.Time
}

type Props struct {
	ID           *GenreID
	Name         string
	CategoriesID []category.CategoryID
	IsActive     *bool
	CreatedAt    *time.Time
}

func NewGenre(props Props) *Genre {
	g := build(props)
	g.validate()
	g.RecordEvent(NewGenreCreatedEvent(g))
	return g
}

func build(props Props) *Genre {
	g := &Genre{
		AggregateRoot: shared.NewAggregateRoot(),
		id:            NewGenreID(),
		name:          props.Name,
		categoriesID:  shared.NewIDSet(props.CategoriesID...),
		isActive:      true,
		createdAt:     time.Now(),
	}
	if props.ID != nil {
		g.id = *props.ID
	}
	if props.IsActive != nil {
		g.isActive = *props.IsActive
	}
	if props.CreatedAt != nil {
		g.createdAt = *props.CreatedAt
	}
	return g
}

func (g *Genre) validate() {
	g.validateName()
}

func (g *Genre) validateName() bool {
	return shared.ValidateField(g.Notification(), "name", g.name, "required,max=255")
}

func (g *Genre) ChangeName(name string) {
	g.name = name
	g.validateName()
}

func (g *Genre) Activate()   { g.isActive = true }
func (g *Genre) Deactivate() { g.isActive = false }

// ============================================================================
// 关联分类：add / remove 幂等，sync 整体替换
// ============================================================================

func (g *Genre) AddCategoryID(id category.CategoryID) {
	g.categoriesID.Add(id)
}

func (g *Genre) RemoveCategoryID(id category.CategoryID) {
	g.categoriesID.Remove(id)
}

// SyncCategoriesID 用给定列表替换全部关联；nil 表示缺失，返回错误且不修改
func (g *Genre) SyncCategoriesID(ids []category.CategoryID) error {
	return g.categoriesID.Sync("categories_id", ids)
}

func (g *Genre) ID() GenreID                 { return g.id }
func (g *Genre) EntityID() shared.Identifier { return g.id }
func (g *Genre) Name() string                { return g.name }
func (g *Genre) IsActive() bool              { return g.isActive }
func (g *Genre) CreatedAt() time.Time        { return g.createdAt }

// CategoriesID 按插入顺序返回关联分类 id
func (g *Genre) CategoriesID() []category.CategoryID { return g.categoriesID.Values() }

func (g *Genre) HasCategory(id category.CategoryID) bool { return g.categoriesID.Has(id) }

func (g *Genre) Equals(other shared.Entity) bool { return shared.SameEntity(g, other) }

// Clone 关联集合深拷贝，Notification 与事件不复制
func (g *Genre) Clone() *Genre {
	cp := *g
	cp.AggregateRoot = shared.NewAggregateRoot()
	cp.categoriesID = g.categoriesID.Clone()
	return &cp
}

// ReconstructionDTO 仅供仓储重建使用
type ReconstructionDTO struct {
	ID           string
	Name         string
	CategoriesID []string
	IsActive     bool
	CreatedAt    time.Time
}

func RebuildFromDTO(dto ReconstructionDTO) (*Genre, error) {
	id, err := ParseGenreID(dto.ID)
	if err != nil {
		return nil, err
	}
	categoriesID, err := category.ParseCategoryIDs(dto.CategoriesID)
	if err != nil {
		return nil, err
	}
	isActive := dto.IsActive
	createdAt := dto.CreatedAt
	g := build(Props{
		ID:           &id,
		Name:         dto.Name,
		CategoriesID: categoriesID,
		IsActive:     &isActive,
		CreatedAt:    &createdAt,
	})
	g.validate()
	if g.Notification().HasErrors() {
		return nil, shared.NewLoadEntityError(g.Notification().Errors())
	}
	return g, nil
}

var _ shared.Aggregate = (*Genre)(nil)
