// Package response содержит типы и функции для формирования единого
// JSON-конверта ответов: {code, status, data} при успехе и
// {code, status, errors:{message}} при ошибке.
package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает успешный ответ сервера.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// ErrorBody — вложенный объект с текстом ошибки.
type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorResponse описывает ответ с ошибкой.
type ErrorResponse struct {
	Code   int       `json:"code"`
	Status string    `json:"status"`
	Errors ErrorBody `json:"errors"`
}

// StatusSuccess — значение статуса для успешного ответа.
const StatusSuccess = "success"

// OK возвращает успешный Response с переданными данными.
func OK(data any) Response {
	return Response{
		Code:   http.StatusOK,
		Status: StatusSuccess,
		Data:   data,
	}
}

// Error возвращает ErrorResponse с заданным HTTP-кодом и сообщением.
// Поле status повторяет стандартный текст статуса.
func Error(code int, msg string) ErrorResponse {
	return ErrorResponse{
		Code:   code,
		Status: http.StatusText(code),
		Errors: ErrorBody{Message: msg},
	}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение превращается в человеко-читаемый текст, тексты
// объединяются через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is shorter than the minimum length", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is longer than the maximum length", err.Field()))
		case "containsany":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must contain at least one digit", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{
		Code:   http.StatusBadRequest,
		Status: http.StatusText(http.StatusBadRequest),
		Errors: ErrorBody{Message: strings.Join(errsMsgs, ", ")},
	}
}
