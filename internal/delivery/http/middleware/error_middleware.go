package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "authkit/internal/delivery/context"
	domainerrors "authkit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every handler error in the unified response envelope
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// AuthError messages arrive already translated for display.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err), slog.String("path", c.Path()))
		}
		m.write(c, appErr.HTTPCode(), appErr.Message(), appErr.ErrorCode(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, httpErr.Code, message, "HTTP_ERROR", message)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message(),
		domainerrors.ErrInternalError.ErrorCode(), err.Error())
}

func (m *ErrorMiddleware) write(c echo.Context, status int, message, code, details string) {
	body := domainerrors.Response{
		Success: false,
		Code:    status,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    code,
			Details: details,
		},
	}

	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
