package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "imagevault/pkg/errors"
)

// ErrorBody is the uniform error envelope. Detail carries the raw failure
// string on 5xx responses; 4xx responses keep only the message.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// Error maps a failure to its status code. Validation errors and AppError
// kinds are handled explicitly; anything else is an unanticipated failure
// and becomes a generic 500.
func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			return c.JSON(appErr.Status, ErrorBody{
				Error:  "Internal error",
				Detail: appErr.Detail(),
			})
		}
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Error:  "Internal error",
		Detail: err.Error(),
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := err.Field()

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Missing required field: %s", field)
		default:
			message = fmt.Sprintf("Invalid field: %s", field)
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{Error: "Invalid input data"})
}
