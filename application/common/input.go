// Package common 应用层各用例共用的输入校验与分页输出
package common

import (
	"errors"
	"strings"

	"catalog/domain/shared"

	"github.com/go-playground/validator/v10"
)

// ValidateInput 按 validate tag 校验用例入参
// 失败时返回 EntityValidationError，key 为 json 字段名
func ValidateInput(in any) error {
	err := shared.Validator().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	n := shared.NewNotification()
	for _, fe := range verrs {
		field := fe.Field()
		// dive 出来的元素形如 categories_id[0]
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		n.AddError(shared.FieldMessage(field, fe.Tag(), fe.Param()), field)
	}
	return n.Err()
}

// MessagesOf 把一组错误转换为消息列表，用于折叠进 Notification
func MessagesOf(errs []error) []string {
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}
