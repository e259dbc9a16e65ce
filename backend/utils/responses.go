package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every failed request. Detail carries the
// message shown to the user.
type ErrorResponse struct {
	Detail  string      `json:"detail"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Error создает JSON ответ с ошибкой
func Error(c *fiber.Ctx, status int, err error, details ...interface{}) error {
	response := ErrorResponse{
		Detail: err.Error(),
		Error:  http.StatusText(status),
	}

	if len(details) > 0 {
		response.Details = details[0]
	}

	return c.Status(status).JSON(response)
}

// ValidationError reports the fields that failed validation.
func ValidationError(c *fiber.Ctx, err error) error {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Detail:  "Datos inválidos.",
		Error:   "Validation Error",
		Details: fields,
	})
}

// BadRequest отправляет ответ 400 Bad Request
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, fiber.NewError(fiber.StatusBadRequest, message))
}

// ErrorHandler renders errors returned by handlers. Anything that is not a
// *fiber.Error becomes a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe)
	}
	return Error(c, fiber.StatusInternalServerError, errors.New(http.StatusText(fiber.StatusInternalServerError)))
}
