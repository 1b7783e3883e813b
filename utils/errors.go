package utils

import "errors"

// Kind класс ошибки, определяет HTTP-статус ответа
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
)

// AppError ошибка с классом и сообщением для пользователя
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NotFoundError ресурс не найден
func NotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// ConflictError конфликт уникальности или блокировка удаления
func ConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// ValidationError некорректные данные запроса
func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// UnauthorizedError отказ аутентификации
func UnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

// InternalError неожиданная ошибка хранилища или логики
func InternalError(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// AsAppError извлекает AppError из цепочки ошибок
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
