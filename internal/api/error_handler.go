package api

import (
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/logger"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
	"net/http"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError

	var (
		he         *echo.HTTPError
		transition *domain.ErrBadTransition
		ingestion  *tabular.IngestionError
	)
	switch {
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	case errors.As(err, &transition):
		code = constants.ErrInvalidTransition.Code()
	case errors.As(err, &ingestion):
		code = http.StatusUnprocessableEntity
	default:
		for err != nil {
			if ce, ok := err.(*constants.CodedError); ok {
				code = ce.Code()
				break
			}
			err = errors.Unwrap(err)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Path(), msg)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
