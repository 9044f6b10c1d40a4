package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperr "todo-list-api.com/todo-list-api/internal/errors"
)

// NewErrorHandler renders every error as {"detail": ...}. Domain exceptions
// keep their message; unclassified failures are logged and hidden.
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, detail := resolve(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, echo.Map{"detail": detail})
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}

func resolve(err error) (int, string) {
	var appErr *apperr.Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.Message
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}

	return http.StatusInternalServerError, "internal server error"
}
