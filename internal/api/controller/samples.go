package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/domain/dto"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
	"net/http"
)

func (c *Controller) ListSamples(ctx echo.Context) error {
	id, err := productID(ctx)
	if err != nil {
		return err
	}
	if _, err = c.catalog.Get(ctx.Request().Context(), id); err != nil {
		return err
	}

	list, err := c.samples.ListSamples(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, list)
}

func (c *Controller) addSample(ctx echo.Context) (domain.Sample, error) {
	id, err := productID(ctx)
	if err != nil {
		return domain.Sample{}, err
	}
	if _, err = c.catalog.Get(ctx.Request().Context(), id); err != nil {
		return domain.Sample{}, err
	}

	var req dto.AddSampleRequest
	if err = ctx.Bind(&req); err != nil {
		return domain.Sample{}, err
	}

	return c.samples.AddSample(ctx.Request().Context(), id, req)
}

func (c *Controller) AddSample(ctx echo.Context) error {
	sample, err := c.addSample(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, sample)
}

func (c *Controller) ListMeasurements(ctx echo.Context) error {
	id, err := productID(ctx)
	if err != nil {
		return err
	}
	if _, err = c.catalog.Get(ctx.Request().Context(), id); err != nil {
		return err
	}

	list, err := c.samples.ListMeasurements(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, list)
}

func (c *Controller) saveStageParams(ctx echo.Context) (domain.Step, []domain.Measurement, error) {
	id, err := productID(ctx)
	if err != nil {
		return domain.Step{}, nil, err
	}

	p, err := c.catalog.Get(ctx.Request().Context(), id)
	if err != nil {
		return domain.Step{}, nil, err
	}

	step, err := c.process.Step(p, ctx.Param("step"))
	if err != nil {
		return domain.Step{}, nil, err
	}

	var req dto.StageParamsRequest
	if err = ctx.Bind(&req); err != nil {
		return domain.Step{}, nil, err
	}

	// html-форма шлёт значения полей плоско, по ключу поля
	if req.Values == nil {
		req.Values = make(map[string]string, len(step.Fields))
		for _, f := range step.Fields {
			if v := ctx.FormValue(f.Key); v != "" {
				req.Values[f.Key] = v
			}
		}
	}

	saved, err := c.samples.SaveStageParams(ctx.Request().Context(), id, step, req.SampleID, req.Values)
	return step, saved, err
}

func (c *Controller) SaveStageParams(ctx echo.Context) error {
	_, saved, err := c.saveStageParams(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, saved)
}

// ParseMeasurement shows how a raw laboratory value is read.
func (c *Controller) ParseMeasurement(ctx echo.Context) error {
	raw := ctx.QueryParam("value")

	resp := dto.ParseNumericResponse{Raw: raw, Absent: true}
	if v, ok := tabular.ParseNumericString(raw); ok {
		resp.Value = &v
		resp.Absent = false
	}

	return ctx.JSON(http.StatusOK, resp)
}
