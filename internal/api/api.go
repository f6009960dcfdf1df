package api

import (
	"context"
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/milkdigit/internal/api/controller"
	"github.com/ougirez/milkdigit/internal/pkg/blob"
	"github.com/ougirez/milkdigit/internal/pkg/config"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/logger"
	"github.com/ougirez/milkdigit/internal/pkg/metrics"
	"github.com/ougirez/milkdigit/internal/pkg/norms"
	"github.com/ougirez/milkdigit/internal/pkg/store"
	"github.com/ougirez/milkdigit/internal/service/analytics"
	"github.com/ougirez/milkdigit/internal/service/catalog"
	"github.com/ougirez/milkdigit/internal/service/exchange"
	"github.com/ougirez/milkdigit/internal/service/process"
	"github.com/ougirez/milkdigit/internal/service/samples"
	"net/http"
	"strings"
)

// Deps are the process-wide components the HTTP surface is built on. Sink and Metrics may be nil.
type Deps struct {
	Store   store.Store
	Norms   *norms.Registry
	Sink    blob.Store
	Metrics *metrics.Metrics
}

type APIService struct {
	router   *echo.Echo
	sessions *sessionStore

	catalogService   *catalog.Service
	processService   *process.Service
	samplesService   *samples.Service
	exchangeService  *exchange.Service
	analyticsService *analytics.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Handler exposes the router for httptest.
func (svc *APIService) Handler() http.Handler {
	return svc.router
}

func gommonLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	}
	return log.INFO
}

func NewAPIService(cfg *config.Config, deps Deps) (*APIService, error) {
	svc := &APIService{
		router:   echo.New(),
		sessions: newSessionStore(cfg.Session.Secret),
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(gommonLevel(cfg.Log.Level))
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewJSONSerializer()
	svc.router.Renderer = renderer
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	if deps.Metrics != nil {
		svc.router.Use(deps.Metrics.Middleware())
	}
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, constants.HeaderRequestID},
	}))
	svc.router.Use(svc.NavigationMiddleware)

	svc.catalogService = catalog.NewCatalogService(deps.Store)
	svc.processService = process.NewProcessService(deps.Norms)
	svc.samplesService = samples.NewSamplesService(deps.Store)
	svc.exchangeService = exchange.NewExchangeService(deps.Store, deps.Sink)
	svc.analyticsService = analytics.NewAnalyticsService()

	cntrl := controller.NewController(controller.Services{
		Catalog:   svc.catalogService,
		Process:   svc.processService,
		Samples:   svc.samplesService,
		Exchange:  svc.exchangeService,
		Analytics: svc.analyticsService,
		Norms:     deps.Norms,
	}, svc.sessions)

	svc.router.GET("/", cntrl.HomePage)
	svc.router.GET("/product/:id", cntrl.ProductPage)
	svc.router.POST("/product/:id/samples", cntrl.SubmitSample)
	svc.router.POST("/product/:id/steps/:step/params", cntrl.SubmitStageParams)
	svc.router.GET("/analytics", cntrl.AnalyticsPage)
	if deps.Metrics != nil {
		svc.router.GET("/metrics", echo.WrapHandler(deps.Metrics.Handler()))
	}

	api := svc.router.Group("/api/v1")

	products := api.Group("/products")
	products.GET("", cntrl.ListProducts)
	products.GET("/:id", cntrl.GetProduct)
	products.GET("/:id/steps", cntrl.GetProductSteps)
	products.GET("/:id/steps/:step", cntrl.GetProductStep)
	products.GET("/:id/requirements", cntrl.GetRequirements)
	products.GET("/:id/samples", cntrl.ListSamples)
	products.POST("/:id/samples", cntrl.AddSample)
	products.GET("/:id/measurements", cntrl.ListMeasurements)
	products.POST("/:id/steps/:step/params", cntrl.SaveStageParams)

	api.GET("/measurements/parse", cntrl.ParseMeasurement)
	api.GET("/norms", cntrl.GetNorms)
	api.GET("/status", cntrl.GetStatus)
	api.POST("/upload", cntrl.Upload)

	export := api.Group("/export")
	export.GET("/zip", cntrl.ExportZIP)
	export.GET("/xlsx", cntrl.ExportXLSX)
	export.POST("/publish", cntrl.PublishExport)
	export.GET("/published", cntrl.ListPublished)

	api.GET("/analytics", cntrl.GetAnalytics)
	api.GET("/navigation", cntrl.GetNavigation)
	api.POST("/navigation", cntrl.ApplyNavigation)

	return svc, nil
}
