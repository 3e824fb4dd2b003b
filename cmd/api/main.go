package main

import (
	"net/http"

	"tree-explorer-api/internal/config"
	"tree-explorer-api/internal/dataset"
	"tree-explorer-api/internal/handler"
	"tree-explorer-api/internal/observability"
	"tree-explorer-api/internal/service"

	_ "tree-explorer-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Tree Explorer API
//	@version		1.0
//	@description	Read-only exploration API over a municipal tree inventory.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	clock := clockwork.NewRealClock()

	// Dataset is loaded once and shared read-only for the process lifetime.
	store, err := dataset.Load(config.DatasetPath, clock)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load tree dataset")
	}
	log.Info().Int("rows", store.Len()).Str("path", config.DatasetPath).Msg("tree dataset loaded")

	metrics := observability.NewMetrics()
	metrics.DatasetRows.Set(float64(store.Len()))

	// Initialize layers
	neighborhoodService := service.NewNeighborhoodService(store)
	parkMapService := service.NewParkMapService(store)
	diameterService := service.NewDiameterService(store)
	catalogService := service.NewCatalogService(store)

	neighborhoodHandler := handler.NewNeighborhoodHandler(neighborhoodService, metrics)
	parkHandler := handler.NewParkHandler(parkMapService, metrics)
	diameterHandler := handler.NewDiameterHandler(diameterService, metrics)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	gin.SetMode(config.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), observability.RequestLogger(log.Logger, metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"rows":      store.Len(),
			"loaded_at": store.LoadedAt(),
			"uptime":    clock.Since(store.LoadedAt()).String(),
		})
	})

	r.GET("/neighborhoods", catalogHandler.Neighborhoods)
	r.GET("/parks", catalogHandler.Parks)
	r.GET("/dataset", catalogHandler.Dataset)
	r.GET("/neighborhood/species", neighborhoodHandler.Species)
	r.GET("/park/map", parkHandler.Map)
	r.GET("/trees/diameter", diameterHandler.Distribution)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
