package common

// RequestValidationError ошибка входных данных запроса.
// Data содержит карту "поле -> сообщение" для ошибок валидации полей.
type RequestValidationError struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (err RequestValidationError) Error() string {
	return err.Message
}

// AlreadyExistsError нарушение уникальности, Field указывает конфликтующее поле
type AlreadyExistsError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (err AlreadyExistsError) Error() string {
	return err.Message
}

// NotFoundError представляет ошибку, когда сущность не найдена
type NotFoundError struct {
	Message string `json:"message"`
}

func (err NotFoundError) Error() string {
	return err.Message
}

// NewNotFoundError создаёт новую ошибку "not found"
func NewNotFoundError(message string) error {
	return NotFoundError{Message: message}
}
