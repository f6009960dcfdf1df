package controller

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/service/samples"
	"net/http"
)

// page templates, see api.NewRenderer
const (
	TemplateHome      = "home.html"
	TemplateProduct   = "product.html"
	TemplateAnalytics = "analytics.html"
)

type HomePage struct {
	Navigation domain.Navigation
	Cards      []domain.ProductCard
}

type ProductPage struct {
	Navigation domain.Navigation
	Details    domain.ProductDetails
	Selected   *domain.Step
	NextReg    string
}

type AnalyticsPage struct {
	Navigation domain.Navigation
	Report     domain.Analytics
}

func (c *Controller) HomePage(ctx echo.Context) error {
	nav, err := c.transition(ctx, domain.NavEvent{Action: domain.NavGotoPage, Page: domain.PageHome})
	if err != nil {
		return err
	}

	cards, err := c.catalog.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.Render(http.StatusOK, TemplateHome, HomePage{Navigation: nav, Cards: cards})
}

func (c *Controller) ProductPage(ctx echo.Context) error {
	id, err := productID(ctx)
	if err != nil {
		return err
	}

	details, err := c.details(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	var events []domain.NavEvent
	if nav := c.navigation(ctx); nav.Page != domain.PageProduct || nav.ProductID == nil || *nav.ProductID != id {
		events = append(events, domain.NavEvent{Action: domain.NavSelectProduct, ProductID: id})
	}
	if stepID := ctx.QueryParam("step"); stepID != "" {
		if _, err = c.process.Step(details.Product, stepID); err != nil {
			return err
		}
		events = append(events, domain.NavEvent{Action: domain.NavSelectStep, StepID: stepID})
	}

	nav, err := c.transition(ctx, events...)
	if err != nil {
		return err
	}

	page := ProductPage{Navigation: nav, Details: details}
	for i := range details.Steps {
		if details.Steps[i].ID == nav.StepID {
			page.Selected = &details.Steps[i]
			break
		}
	}

	next, err := c.samples.NextSampleID(ctx.Request().Context())
	if err != nil {
		return err
	}
	page.NextReg = samples.DefaultRegNumber(next)

	return ctx.Render(http.StatusOK, TemplateProduct, page)
}

func (c *Controller) AnalyticsPage(ctx echo.Context) error {
	nav, err := c.transition(ctx, domain.NavEvent{Action: domain.NavGotoPage, Page: domain.PageAnalytics})
	if err != nil {
		return err
	}

	return ctx.Render(http.StatusOK, TemplateAnalytics, AnalyticsPage{Navigation: nav, Report: c.analytics.Report()})
}

// SubmitSample handles the product page form and goes back to the page.
func (c *Controller) SubmitSample(ctx echo.Context) error {
	if _, err := c.addSample(ctx); err != nil {
		return err
	}

	return ctx.Redirect(http.StatusSeeOther, "/product/"+ctx.Param("id"))
}

func (c *Controller) SubmitStageParams(ctx echo.Context) error {
	step, _, err := c.saveStageParams(ctx)
	if err != nil {
		return err
	}

	return ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/product/%s?step=%s", ctx.Param("id"), step.ID))
}
