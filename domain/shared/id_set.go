package shared

import "fmt"

// IDSet 多对多关联的 id 集合，按 String() 去重并保持插入顺序
type IDSet[ID Identifier] struct {
	keys   []string
	values map[string]ID
}

func NewIDSet[ID Identifier](ids ...ID) IDSet[ID] {
	s := IDSet[ID]{values: make(map[string]ID, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add 幂等：已存在时覆盖值，位置不变
func (s *IDSet[ID]) Add(id ID) {
	if s.values == nil {
		s.values = make(map[string]ID)
	}
	key := id.String()
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = id
}

// Remove 不存在时什么也不做
func (s *IDSet[ID]) Remove(id ID) {
	key := id.String()
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Sync 整体替换，不做合并；ids 为 nil 视为缺失
func (s *IDSet[ID]) Sync(field string, ids []ID) error {
	if ids == nil {
		return fmt.Errorf("%s is required", field)
	}
	next := NewIDSet(ids...)
	*s = next
	return nil
}

func (s IDSet[ID]) Has(id ID) bool {
	_, ok := s.values[id.String()]
	return ok
}

func (s IDSet[ID]) Len() int { return len(s.keys) }

// Values 按插入顺序返回
func (s IDSet[ID]) Values() []ID {
	out := make([]ID, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.values[k])
	}
	return out
}

// Strings 按插入顺序返回字符串形式（持久化与输出使用）
func (s IDSet[ID]) Strings() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Clone 深拷贝，副本与原集合互不影响
func (s IDSet[ID]) Clone() IDSet[ID] {
	return NewIDSet(s.Values()...)
}

// Intersects 与给定 id 列表是否有交集
func (s IDSet[ID]) Intersects(ids []ID) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}
