package category

import (
	"time"

	"catalog/domain/shared"
)

// EntityName 用于 NotFoundError 消息
const EntityName = "Category"

// CategoryID 分类标识
type CategoryID struct {
	shared.Uuid
}

func NewCategoryID() CategoryID {
	return CategoryID{shared.NewUuid()}
}

func ParseCategoryID(id string) (CategoryID, error) {
	u, err := shared.ParseUuid(id)
	if err != nil {
		return CategoryID{}, err
	}
	return CategoryID{u}, nil
}

// ParseCategoryIDs 遇到第一个非法 id 即返回错误
func ParseCategoryIDs(ids []string) ([]CategoryID, error) {
	out := make([]CategoryID, 0, len(ids))
	for _, raw := range ids {
		id, err := ParseCategoryID(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// Category 分类聚合根
//
// 聚合根特征：
// 1. 所有字段私有，通过方法暴露行为
// 2. 校验错误写入 Notification，由调用方决定何时抛出
// 3. 创建时记录领域事件
type Category struct {
	shared.AggregateRoot

	id          CategoryID
	name        string
	description *string
	isActive    bool
	createdAt   time.Time
}

// Props 创建参数；IsActive 为 nil 时默认激活
type Props struct {
	ID          *CategoryID
	Name        string
	Description *string
	IsActive    *bool
	CreatedAt   *time.Time
}

// NewCategory 创建分类并校验全部字段
// 返回的聚合可能处于非法状态，调用方需检查 Notification()
func NewCategory(props Props) *Category {
	c := build(props)
	c.validate()
	c.RecordEvent(NewCategoryCreatedEvent(c))
	return c
}

func build(props Props) *Category {
	c := &Category{
		AggregateRoot: shared.NewAggregateRoot(),
		id:            NewCategoryID(),
		name:          props.Name,
		description:   props.Description,
		isActive:      true,
		createdAt:     time.Now(),
	}
	if props.ID != nil {
		c.id = *props.ID
	}
	if props.IsActive != nil {
		c.isActive = *props.IsActive
	}
	if props.CreatedAt != nil {
		c.createdAt = *props.CreatedAt
	}
	return c
}

// ============================================================================
// 校验：每个字段一个函数，构造时全部执行，mutator 只执行自己的
// ============================================================================

func (c *Category) validate() {
	c.validateName()
}

func (c *Category) validateName() bool {
	return shared.ValidateField(c.Notification(), "name", c.name, "required,max=255")
}

// ============================================================================
// 领域行为方法
// ============================================================================

func (c *Category) ChangeName(name string) {
	c.name = name
	c.validateName()
}

func (c *Category) ChangeDescription(description *string) {
	c.description = description
}

func (c *Category) Activate() {
	c.isActive = true
}

func (c *Category) Deactivate() {
	c.isActive = false
}

// ============================================================================
// Getters - 只读访问器
// ============================================================================
func (c *Category) ID() CategoryID              { return c.id }
func (c *Category) EntityID() shared.Identifier { return c.id }
func (c *Category) Name() string                { return c.name }
func (c *Category) Description() *string        { return c.description }
func (c *Category) IsActive() bool              { return c.isActive }
func (c *Category) CreatedAt() time.Time        { return c.createdAt }

// Clone 复制聚合状态；副本的 Notification 为空，也不带未提交的事件
func (c *Category) Clone() *Category {
	cp := *c
	cp.AggregateRoot = shared.NewAggregateRoot()
	return &cp
}

// Equals 同类型且 id 相同
func (c *Category) Equals(other shared.Entity) bool {
	return shared.SameEntity(c, other)
}

// ReconstructionDTO 分类重建数据传输对象
// ⚠️ 注意：此DTO仅应在仓储实现中使用，不应在应用层调用
type ReconstructionDTO struct {
	ID          string
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}

// RebuildFromDTO 从持久化数据重建聚合，不记录事件
// 数据不满足聚合校验时 Notification 中会带有错误，仓储据此返回 LoadEntityError
func RebuildFromDTO(dto ReconstructionDTO) (*Category, error) {
	id, err := ParseCategoryID(dto.ID)
	if err != nil {
		return nil, err
	}
	isActive := dto.IsActive
	createdAt := dto.CreatedAt
	c := build(Props{
		ID:          &id,
		Name:        dto.Name,
		Description: dto.Description,
		IsActive:    &isActive,
		CreatedAt:   &createdAt,
	})
	c.validate()
	if c.Notification().HasErrors() {
		return nil, shared.NewLoadEntityError(c.Notification().Errors())
	}
	return c, nil
}

// 编译时检查 Category 实现了 Aggregate 接口
var _ shared.Aggregate = (*Category)(nil)
