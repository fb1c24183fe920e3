package shared

import "slices"

// Notification 按字段收集校验错误，保持字段首次出现的顺序
// 不存在空列表的字段
type Notification struct {
	fields []string
	errors map[string][]string
}

func NewNotification() *Notification {
	return &Notification{errors: make(map[string][]string)}
}

// AddError 追加一条错误
func (n *Notification) AddError(message, field string) {
	n.ensure(field)
	if !slices.Contains(n.errors[field], message) {
		n.errors[field] = append(n.errors[field], message)
	}
}

// SetError 替换字段的全部错误；messages 为空时不做任何事
func (n *Notification) SetError(field string, messages ...string) {
	if len(messages) == 0 {
		return
	}
	n.ensure(field)
	n.errors[field] = slices.Clone(messages)
}

func (n *Notification) ensure(field string) {
	if n.errors == nil {
		n.errors = make(map[string][]string)
	}
	if _, ok := n.errors[field]; !ok {
		n.fields = append(n.fields, field)
	}
}

func (n *Notification) HasErrors() bool {
	return len(n.fields) > 0
}

// HasFieldErrors 某个字段是否已有错误
func (n *Notification) HasFieldErrors(field string) bool {
	_, ok := n.errors[field]
	return ok
}

// CopyErrors 把另一个 Notification 的错误合并进来
func (n *Notification) CopyErrors(other *Notification) {
	if other == nil {
		return
	}
	for _, field := range other.fields {
		for _, msg := range other.errors[field] {
			n.AddError(msg, field)
		}
	}
}

// Errors 按字段插入顺序输出，每个元素只有一个 key
func (n *Notification) Errors() []FieldErrors {
	out := make([]FieldErrors, 0, len(n.fields))
	for _, field := range n.fields {
		out = append(out, FieldErrors{field: slices.Clone(n.errors[field])})
	}
	return out
}

// Err 无错误时返回 nil，否则返回 EntityValidationError
func (n *Notification) Err() error {
	if !n.HasErrors() {
		return nil
	}
	return NewEntityValidationError(n.Errors())
}
