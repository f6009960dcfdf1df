package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/logger"
)

// RequestIDMiddleware tags the request and its logger with an id, reusing X-Request-ID when sent.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Request().Header.Get(constants.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Response().Header().Set(constants.HeaderRequestID, id)
		ctx.Set(constants.CtxKeyRequestID, id)
		ctx.SetRequest(ctx.Request().WithContext(logger.WithFields(ctx.Request().Context(), "request_id", id)))

		return next(ctx)
	}
}

// NavigationMiddleware exposes the session navigation state to handlers.
func (svc *APIService) NavigationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ctx.Set(constants.CtxKeyNavigation, svc.sessions.Load(ctx))
		return next(ctx)
	}
}
