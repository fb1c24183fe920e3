package shared

import "reflect"

// Entity 实体接口
// 实体与值对象的区别：
// 1. 实体有唯一标识（EntityID）
// 2. 通过标识判断相等性（即使属性相同，ID不同就是不同的实体）
type Entity interface {
	EntityID() Identifier
}

// SameEntity 两个实体相等当且仅当具体类型相同且标识值相等
// 任一方为 nil（包括带类型的 nil 指针）时不相等
func SameEntity(a, b Entity) bool {
	if isNilEntity(a) || isNilEntity(b) {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.EntityID().String() == b.EntityID().String()
}

func isNilEntity(e Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Aggregate 聚合根接口
// 聚合根是一致性边界：持有自己的校验状态（Notification），记录领域事件，
// 工作单元在提交时拉取事件
type Aggregate interface {
	Entity
	Notification() *Notification
	PullEvents() []DomainEvent
}

// AggregateRoot 聚合根基类，由各聚合嵌入
// Notification 在构造时创建为空，从不持久化
type AggregateRoot struct {
	notification *Notification
	events       []DomainEvent
}

func NewAggregateRoot() AggregateRoot {
	return AggregateRoot{
		notification: NewNotification(),
		events:       make([]DomainEvent, 0),
	}
}

// Notification 返回聚合的校验错误收集器
func (a *AggregateRoot) Notification() *Notification {
	if a.notification == nil {
		a.notification = NewNotification()
	}
	return a.notification
}

// RecordEvent 记录领域事件，等待工作单元收集
func (a *AggregateRoot) RecordEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// PullEvents 获取并清空聚合根记录的领域事件
func (a *AggregateRoot) PullEvents() []DomainEvent {
	events := make([]DomainEvent, len(a.events))
	copy(events, a.events)
	a.events = make([]DomainEvent, 0)
	return events
}

// ValueObject 值对象接口
// 值对象的特征：
// 1. 没有唯一标识
// 2. 不可变（immutable）
// 3. 通过属性值判断相等性
type ValueObject interface {
	Equals(other interface{}) bool
}
