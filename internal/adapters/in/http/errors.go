package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fastdelivery/internal/core/application/usecases/queries"
	"fastdelivery/internal/pkg/errs"
)

// writeError logs err under the calling operation and translates it into the
// public error contract: accumulated validation messages as a 400 list,
// not-found 404, duplicate 409, bad credentials 401, everything else 500.
// The 500 body carries the underlying message only in development mode.
func (s *Server) writeError(c echo.Context, op string, err error) error {
	s.logger.Error("request failed", "op", op, "error", err)

	switch {
	case errs.IsValidation(err):
		return c.JSON(http.StatusBadRequest, errorsEnvelope{Errors: errs.Messages(err)})

	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorEnvelope{Error: err.Error()})

	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return c.JSON(http.StatusConflict, errorEnvelope{Error: err.Error()})

	case errors.Is(err, queries.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorEnvelope{Error: "invalid credentials"})

	default:
		message := "internal server error"
		if s.development {
			message = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: message})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorsEnvelope{Errors: []string{message}})
}
