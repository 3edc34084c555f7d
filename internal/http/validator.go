package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"checkers/internal/core"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// bind decodes the JSON body into a T, validates its tags and stores the
// pointer under bodyKey for the next handler
func bind[T any](c *fiber.Ctx) error {
	body := new(T)
	if err := c.BodyParser(body); err != nil {
		return fail(c, fiber.StatusBadRequest, core.ErrorResponse{
			Error:   "invalid request body",
			Code:    core.ErrInvalidRequest,
			Details: err.Error(),
		})
	}
	if err := validate.Struct(body); err != nil {
		return fail(c, fiber.StatusBadRequest, core.ErrorResponse{
			Error:   "validation failed",
			Code:    core.ErrInvalidRequest,
			Details: describeValidationError(err),
		})
	}

	c.Locals(bodyKey, body)
	return c.Next()
}

// describeValidationError joins one readable sentence per failed field
func describeValidationError(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, describeField(e))
	}
	return strings.Join(msgs, "; ")
}

func describeField(e validator.FieldError) string {
	unit := ""
	if e.Kind() == reflect.String {
		unit = " characters"
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", e.Field(), e.Param(), unit)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", e.Field(), e.Param(), unit)
	default:
		return fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag())
	}
}

func isValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}
