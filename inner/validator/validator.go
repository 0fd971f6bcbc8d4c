package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// имя сотрудника: 3-16 строчных латинских букв, цифр, '_' или '-',
// либо 2-10 символов CJK (U+2E80 - U+9FFF)
var empNamePattern = regexp.MustCompile(`^(?:[a-z0-9_-]{3,16}|[\x{2E80}-\x{9FFF}]{2,10})$`)

const EmpNameTag = "empname"

// MatchEmpName проверяет имя сотрудника на соответствие шаблону
func MatchEmpName(name string) bool {
	return empNamePattern.MatchString(name)
}

type Validator struct {
	validate *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve ValidationErrors) Error() string {
	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// Fields сворачивает ошибки в карту "поле -> сообщение".
// Если у поля несколько ошибок, остаётся последняя.
func (ve ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(ve.Errors))
	for _, err := range ve.Errors {
		fields[err.Field] = err.Message
	}
	return fields
}

func New() *Validator {
	validate := validator.New()
	// в ошибках используем имена полей из json-тегов, как их видит клиент
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	if err := validate.RegisterValidation(EmpNameTag, func(fl validator.FieldLevel) bool {
		return MatchEmpName(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", EmpNameTag, err))
	}
	return &Validator{validate: validate}
}

func (v *Validator) Validate(request any) error {
	err := v.validate.Struct(request)
	if err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			return v.formatValidationErrors(validateErrs)
		}
		return err
	}
	return nil
}

func (v *Validator) formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors []ValidationError
	for _, err := range errs {
		validationError := ValidationError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: v.getErrorMessage(err),
		}
		validationErrors = append(validationErrors, validationError)
	}
	return ValidationErrors{Errors: validationErrors}
}

func (v *Validator) getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' required", err.Field())
	case "email":
		return fmt.Sprintf("Field '%s' must contain a valid email address", err.Field())
	case EmpNameTag:
		return fmt.Sprintf("Field '%s' must be 2-10 CJK characters or 3-16 lowercase letters, digits, '_' or '-'", err.Field())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of: %s", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("Field '%s' must be greater than %s", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("Field '%s' must contain at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must contain a maximum of %s characters", err.Field(), err.Param())
	case "numeric":
		return fmt.Sprintf("Field '%s' must contain only numbers", err.Field())
	default:
		return fmt.Sprintf("Field '%s' contains an incorrect value", err.Field())
	}
}
