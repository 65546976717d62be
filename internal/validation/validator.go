// Package validation validates request DTOs with go-playground/validator and
// renders the failures as Portuguese messages for API clients.
//
// Fields are named by their `label` tag, falling back to the json name:
//
//	type CreateSectionRequest struct {
//	    Name string `json:"name" label:"Nome" validate:"required,min=3,max=200"`
//	}
package validation

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

type ValidationError struct {
	field   string
	tag     string
	param   string
	message string
}

func (e *ValidationError) Field() string {
	return e.field
}

func (e *ValidationError) Tag() string {
	return e.tag
}

func (e *ValidationError) Param() string {
	return e.param
}

func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError collects every field failure of one request.
type RequestValidationError struct {
	errors []ValidationError
}

// NewRequestValidationError builds a single-field failure outside the
// validator, e.g. for query parameters or malformed bodies.
func NewRequestValidationError(field, message string) *RequestValidationError {
	return &RequestValidationError{
		errors: []ValidationError{{field: field, tag: "custom", message: message}},
	}
}

func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "Dados inválidos"
	}

	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "; ")
}

func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			if label := field.Tag.Get("label"); label != "" {
				return label
			}
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// Format only: exactly eleven digits, no check-digit verification.
		_ = validate.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) != 11 {
				return false
			}
			for _, r := range value {
				if r < '0' || r > '9' {
					return false
				}
			}
			return true
		})
	})

	return validate
}

// ValidateStruct returns nil when s is valid.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{
				{
					field:   "unknown",
					tag:     "unknown",
					message: err.Error(),
				},
			},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			message: translateError(fieldErr),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

var errorMessageTemplates = map[string]string{
	"required": "%s é obrigatório",
	"email":    "%s deve ser um endereço válido",
	"cpf":      "%s deve conter 11 dígitos",
}

var errorMessageWithParam = map[string]string{
	"gte": "%s deve ser maior ou igual a %s",
	"lte": "%s deve ser menor ou igual a %s",
	"gt":  "%s deve ser maior que %s",
	"lt":  "%s deve ser menor que %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	return translateMinMax(fe, field, tag, param)
}

func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind() == reflect.String

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s deve ter pelo menos %s caracteres", field, param)
		}
		return fmt.Sprintf("%s deve ser pelo menos %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, param)
		}
		return fmt.Sprintf("%s deve ser no máximo %s", field, param)
	default:
		return fmt.Sprintf("%s é inválido", field)
	}
}
