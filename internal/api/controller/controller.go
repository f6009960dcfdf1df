package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/norms"
	"github.com/ougirez/milkdigit/internal/service/analytics"
	"github.com/ougirez/milkdigit/internal/service/catalog"
	"github.com/ougirez/milkdigit/internal/service/exchange"
	"github.com/ougirez/milkdigit/internal/service/process"
	"github.com/ougirez/milkdigit/internal/service/samples"
	"strconv"
)

// NavigationStore persists the per-session navigation state.
type NavigationStore interface {
	Load(ctx echo.Context) domain.Navigation
	Save(ctx echo.Context, nav domain.Navigation) error
}

type Services struct {
	Catalog   *catalog.Service
	Process   *process.Service
	Samples   *samples.Service
	Exchange  *exchange.Service
	Analytics *analytics.Service
	Norms     *norms.Registry
}

type Controller struct {
	catalog   *catalog.Service
	process   *process.Service
	samples   *samples.Service
	exchange  *exchange.Service
	analytics *analytics.Service
	norms     *norms.Registry
	sessions  NavigationStore
}

func NewController(services Services, sessions NavigationStore) *Controller {
	return &Controller{
		catalog:   services.Catalog,
		process:   services.Process,
		samples:   services.Samples,
		exchange:  services.Exchange,
		analytics: services.Analytics,
		norms:     services.Norms,
		sessions:  sessions,
	}
}

func productID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, constants.ErrProductNotFound
	}
	return id, nil
}

func (c *Controller) navigation(ctx echo.Context) domain.Navigation {
	if nav, ok := ctx.Get(constants.CtxKeyNavigation).(domain.Navigation); ok {
		return nav
	}
	return c.sessions.Load(ctx)
}

// transition applies the events in order and stores the resulting state once.
func (c *Controller) transition(ctx echo.Context, events ...domain.NavEvent) (domain.Navigation, error) {
	next := c.navigation(ctx)
	for _, ev := range events {
		var err error
		if next, err = next.Apply(ev); err != nil {
			return next, err
		}
	}
	return next, c.sessions.Save(ctx, next)
}
