package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/domain/dto"
	"net/http"
)

func (c *Controller) GetNavigation(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.navigation(ctx))
}

func (c *Controller) ApplyNavigation(ctx echo.Context) error {
	var req dto.NavigationRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	ev := domain.NavEvent{
		Action:    domain.NavAction(req.Action),
		Page:      domain.Page(req.Page),
		ProductID: req.ProductID,
		StepID:    req.StepID,
	}

	// выбрать можно только существующий продукт и его этап
	switch ev.Action {
	case domain.NavSelectProduct:
		if _, err := c.catalog.Get(ctx.Request().Context(), ev.ProductID); err != nil {
			return err
		}
	case domain.NavSelectStep:
		if nav := c.navigation(ctx); nav.ProductID != nil {
			p, err := c.catalog.Get(ctx.Request().Context(), *nav.ProductID)
			if err != nil {
				return err
			}
			if _, err = c.process.Step(p, ev.StepID); err != nil {
				return err
			}
		}
	}

	next, err := c.transition(ctx, ev)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, next)
}
