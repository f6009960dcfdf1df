package controller

import (
	"context"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/domain"
	"net/http"
)

func (c *Controller) ListProducts(ctx echo.Context) error {
	cards, err := c.catalog.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, cards)
}

func (c *Controller) details(ctx context.Context, id int64) (domain.ProductDetails, error) {
	p, err := c.catalog.Get(ctx, id)
	if err != nil {
		return domain.ProductDetails{}, err
	}

	details := domain.ProductDetails{
		Product:        p,
		Classification: c.process.Classify(p),
		Requirements:   c.process.Requirements(p),
		Steps:          c.process.Steps(p),
	}

	if details.Samples, err = c.samples.ListSamples(ctx, id); err != nil {
		return domain.ProductDetails{}, err
	}
	if details.Measurements, err = c.samples.ListMeasurements(ctx, id); err != nil {
		return domain.ProductDetails{}, err
	}

	return details, nil
}

func (c *Controller) GetProduct(ctx echo.Context) error {
	id, err := productID(ctx)
	if err != nil {
		return err
	}

	details, err := c.details(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	nav := c.navigation(ctx)
	details.Navigation = &nav

	return ctx.JSON(http.StatusOK, details)
}

func (c *Controller) GetProductSteps(ctx echo.Context) error {
	id, err := productID(ctx)
	if err != nil {
		return err
	}

	p, err := c.catalog.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.process.Steps(p))
}

func (c *Controller) GetProductStep(ctx echo.Context) error {
	id, err := productID(ctx)
	if err != nil {
		return err
	}

	p, err := c.catalog.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	step, err := c.process.Step(p, ctx.Param("step"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, step)
}

func (c *Controller) GetRequirements(ctx echo.Context) error {
	id, err := productID(ctx)
	if err != nil {
		return err
	}

	p, err := c.catalog.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.process.Requirements(p))
}
