package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/adapters/in/http/openapi"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an error onto the HTTP status the API reports for it.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrCapacityExceeded):
		return http.StatusConflict
	case errs.IsInvalid(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) openapi.Error {
	status := statusOf(err)

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return openapi.Error{Code: status, Message: msg}
		}
		return openapi.Error{Code: status, Message: http.StatusText(status)}
	case status == http.StatusInternalServerError:
		return openapi.Error{Code: status, Message: "Internal server error"}
	default:
		return openapi.Error{Code: status, Message: err.Error()}
	}
}

// fail writes err as an Error body.
func (s *Server) fail(ctx echo.Context, err error) error {
	body := errorBody(err)
	if body.Code >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(body.Code, body)
}

// errorHandler renders errors that escape the handlers, such as binding,
// routing and validation failures, in the same shape as handler errors.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		body := errorBody(err)
		if body.Code >= http.StatusInternalServerError {
			logger.Error("unhandled error", "path", ctx.Path(), "error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(body.Code)
		} else {
			writeErr = ctx.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.Warn("failed to write error response", "error", writeErr)
		}
	}
}
