package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// В ошибках поля называются по json-тегу: user_name, а не UserName
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// "cuisine" - стиль из списка domain.AllowedCuisines (регистр не важен)
	_ = validate.RegisterValidation("cuisine", func(fl validator.FieldLevel) bool {
		return domain.IsAllowedCuisine(fl.Field().String())
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// ToAppError переводит ошибки валидатора в AppError с деталями по полям
func ToAppError(err error) *errors.AppError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrValidationFailed
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field == "rating" {
			return errors.ErrInvalidRating
		}
		switch fe.Tag() {
		case "cuisine":
			return errors.ErrInvalidCuisine.WithDetails(map[string]interface{}{
				"style":   fe.Value(),
				"allowed": domain.AllowedCuisines,
			})
		case "latitude", "longitude":
			return errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				field: fe.Value(),
			})
		}
		fields[field] = fe.Tag()
	}

	return errors.ErrValidationFailed.WithDetails(fields)
}
