package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const notBlankTag = "notblank"

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В ошибках используем имена из json тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
}

// Struct проверяет структуру по тегам validate. Любое нарушение превращается
// в ValidationError с переданным сообщением, Field указывает на первое поле.
func Struct(s interface{}, message string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return New(fieldErrs[0].Field(), message)
	}

	return fmt.Errorf("validate %T: %w", s, err)
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}
