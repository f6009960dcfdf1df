package controller

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

func (c *Controller) GetAnalytics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.analytics.Report())
}
