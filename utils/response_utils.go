package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error ответ с ошибкой и произвольным статусом
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// UnprocessableEntity 422
func UnprocessableEntity(c *gin.Context, message string) {
	Error(c, http.StatusUnprocessableEntity, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// InternalServerError 500
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// RespondError отображает AppError на HTTP-статус согласно классу ошибки
func RespondError(c *gin.Context, err error) {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Kind {
		case KindNotFound:
			NotFound(c, appErr.Message)
		case KindConflict:
			Conflict(c, appErr.Message)
		case KindValidation:
			UnprocessableEntity(c, appErr.Message)
		case KindUnauthorized:
			Unauthorized(c, appErr.Message)
		default:
			InternalServerError(c, appErr.Error())
		}
		return
	}
	InternalServerError(c, err.Error())
}
