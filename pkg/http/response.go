package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// OKResponse writes the success body for a relayed alert.
func OKResponse(c echo.Context) error {
	return c.JSON(http.StatusOK, RelayResponse{Status: "ok"})
}

// ErrorResponse writes an error body with the given status code.
func ErrorResponse(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, RelayResponse{Status: "error", Message: message})
}

// InternalServerErrorResponse writes internal server error.
func InternalServerErrorResponse(c echo.Context) error {
	return ErrorResponse(c, http.StatusInternalServerError, "Something went wrong")
}

// AppErrorResponse writes application error response.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		resp := RelayResponse{Status: "error", Message: appErr.Message}
		if body, ok := appErr.Params["discord_response"].(string); ok {
			resp.DiscordResponse = body
		}
		return c.JSON(appErr.Status, resp)
	}
	return InternalServerErrorResponse(c)
}
