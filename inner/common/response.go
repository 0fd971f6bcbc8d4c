package common

import (
	"github.com/gofiber/fiber/v2"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// ключи, под которыми контроллеры кладут данные в Msg.Extras
const (
	KeyErrorFields = "errorFields"
	KeyVaMsg       = "va_msg"
)

// Msg единый конверт ответа: статус, сообщение и именованные данные
type Msg struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Extras  map[string]any `json:"extras"`
} // @name Msg

func Success() *Msg {
	return &Msg{
		Status:  StatusSuccess,
		Message: "success",
		Extras:  map[string]any{},
	}
}

func Fail() *Msg {
	return &Msg{
		Status:  StatusFail,
		Message: "fail",
		Extras:  map[string]any{},
	}
}

// Add добавляет значение в Extras и возвращает тот же Msg для цепочки вызовов
func (m *Msg) Add(key string, value any) *Msg {
	m.Extras[key] = value
	return m
}

// WithMessage заменяет текст сообщения
func (m *Msg) WithMessage(message string) *Msg {
	m.Message = message
	return m
}

func (m *Msg) IsSuccess() bool {
	return m.Status == StatusSuccess
}

func ErrResponse(
	c *fiber.Ctx,
	code int,
	message string,
	extras ...map[string]any,
) error {
	msg := Fail().WithMessage(message)
	for _, extra := range extras {
		for key, value := range extra {
			msg.Add(key, value)
		}
	}
	return c.Status(code).JSON(msg)
}

func OkResponse(
	c *fiber.Ctx,
	msg *Msg,
) error {
	return c.Status(fiber.StatusOK).JSON(msg)
}

// ValidationErrorResponse формирует ответ с ошибками валидации полей
func ValidationErrorResponse(ctx *fiber.Ctx, validationErr RequestValidationError) error {
	if fields, ok := validationErr.Data.(map[string]string); ok && len(fields) > 0 {
		return ErrResponse(ctx, fiber.StatusBadRequest, validationErr.Message, map[string]any{
			KeyErrorFields: fields,
		})
	}
	return ErrResponse(ctx, fiber.StatusBadRequest, validationErr.Message)
}
