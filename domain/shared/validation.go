package shared

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator 返回共享的 validator 实例（validator 自身并发安全，且会缓存 struct 元数据）
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// 结构体校验的字段名使用 json tag，与输出的错误 key 一致
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateField 用 validator tag 校验单个字段，失败信息写入 notification
// 每个聚合的 mutator 只校验自己负责的字段
func ValidateField(n *Notification, field string, value any, tag string) bool {
	err := Validator().Var(value, tag)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		n.AddError(err.Error(), field)
		return false
	}
	for _, fe := range verrs {
		n.AddError(FieldMessage(field, fe.Tag(), fe.Param()), field)
	}
	return false
}

// FieldMessage 把 validator 的 tag 翻译为面向用户的消息
func FieldMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s should not be empty", field)
	case "max":
		return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, param)
	case "min":
		return fmt.Sprintf("%s must contain at least %s elements", field, param)
	case "gte":
		return fmt.Sprintf("%s must not be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must not be greater than %s", field, param)
	case "uuid", "uuid4":
		return fmt.Sprintf("each value in %s must be a UUID", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s", field, param)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, tag)
	}
}
