// Package router wires the services and handlers onto the HTTP routes.
package router

import (
	"net/http"

	"github.com/dimitrije/kisan-api/internal/handlers"
	"github.com/dimitrije/kisan-api/internal/metrics"
	appmw "github.com/dimitrije/kisan-api/internal/middleware"
	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/services"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/dimitrije/kisan-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"go.uber.org/zap"
)

type Options struct {
	Store   store.Store
	Metrics *metrics.Collector
	Logger  *zap.Logger

	// Admin guards record writes. Nil leaves them open.
	Admin appmw.AdminValidator

	ListLimit       int
	WeatherLocation string
	Production      bool
}

func New(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	st := opts.Store

	cropHandler := handlers.NewRecordHandler[*models.Crop, dto.CreateCropRequest, dto.UpdateCropRequest](
		services.NewCropService(st, opts.ListLimit), logger)
	marketHandler := handlers.NewRecordHandler[*models.MarketPrice, dto.CreateMarketPriceRequest, dto.UpdateMarketPriceRequest](
		services.NewMarketPriceService(st, opts.ListLimit), logger)
	schemeHandler := handlers.NewRecordHandler[*models.Scheme, dto.CreateSchemeRequest, dto.UpdateSchemeRequest](
		services.NewSchemeService(st, opts.ListLimit), logger)
	storageHandler := handlers.NewRecordHandler[*models.StorageGuide, dto.CreateStorageGuideRequest, dto.UpdateStorageGuideRequest](
		services.NewStorageGuideService(st, opts.ListLimit), logger)
	qaHandler := handlers.NewRecordHandler[*models.QAPair, dto.CreateQAPairRequest, dto.UpdateQAPairRequest](
		services.NewQAPairService(st, opts.ListLimit), logger)
	chatHandler := handlers.NewChatHandler(services.NewChatService(st, opts.Metrics), logger)
	weatherHandler := handlers.NewWeatherHandler(services.NewWeatherService(st, opts.WeatherLocation), logger)
	healthHandler := handlers.NewHealthHandler(st, logger)

	app := drift.New()

	if opts.Production {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api")

	api.Post("/ai/chat", chatHandler.Ask)

	api.Get("/weather", weatherHandler.Current)
	api.Get("/weather/forecast", weatherHandler.Forecast)
	api.Get("/weather/locations", weatherHandler.Locations)

	api.Get("/health", healthHandler.Check)

	records := api.Group("")
	records.Use(appmw.Admin(opts.Admin))

	records.Get("/crops", cropHandler.List)
	records.Post("/crops", cropHandler.Create)
	records.Get("/crops/:id", cropHandler.Get)
	records.Patch("/crops/:id", cropHandler.Update)
	records.Put("/crops/:id", cropHandler.Update)
	records.Delete("/crops/:id", cropHandler.Delete)

	records.Get("/market", marketHandler.List)
	records.Post("/market", marketHandler.Create)
	records.Get("/market/:id", marketHandler.Get)
	records.Patch("/market/:id", marketHandler.Update)
	records.Put("/market/:id", marketHandler.Update)
	records.Delete("/market/:id", marketHandler.Delete)

	records.Get("/schemes", schemeHandler.List)
	records.Post("/schemes", schemeHandler.Create)
	records.Get("/schemes/:id", schemeHandler.Get)
	records.Patch("/schemes/:id", schemeHandler.Update)
	records.Put("/schemes/:id", schemeHandler.Update)
	records.Delete("/schemes/:id", schemeHandler.Delete)

	records.Get("/storage", storageHandler.List)
	records.Post("/storage", storageHandler.Create)
	records.Get("/storage/:id", storageHandler.Get)
	records.Patch("/storage/:id", storageHandler.Update)
	records.Put("/storage/:id", storageHandler.Update)
	records.Delete("/storage/:id", storageHandler.Delete)

	records.Get("/ai/questions", qaHandler.List)
	records.Post("/ai/questions", qaHandler.Create)
	records.Get("/ai/questions/:id", qaHandler.Get)
	records.Patch("/ai/questions/:id", qaHandler.Update)
	records.Put("/ai/questions/:id", qaHandler.Update)
	records.Delete("/ai/questions/:id", qaHandler.Delete)

	return appmw.Logger(logger)(app)
}
