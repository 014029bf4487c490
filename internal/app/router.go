package app

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func wireRouter(cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(mw.CORS)
	if cfg.OtelEnabled {
		router.Use(otelgin.Middleware("vesselwatch-backend"))
	}
	router.Use(mw.TraceContext)
	router.Use(mw.RequestLog)

	router.GET("/healthcheck", handlerset.Health.HealthCheck)

	lists := router.Group("/lists")
	{
		lists.GET("", handlerset.Watchlist.GetLists)
		lists.POST("", handlerset.Watchlist.CreateList)
		lists.GET("/:id", handlerset.Watchlist.GetList)
		lists.PUT("/:id", handlerset.Watchlist.UpdateList)
		lists.DELETE("/:id", handlerset.Watchlist.DeleteList)

		lists.GET("/:id/vessels", handlerset.Vessel.GetListVessels)
		lists.POST("/:id/vessels", handlerset.Vessel.AddVessel)
		lists.GET("/:id/vessels/export", handlerset.Vessel.ExportCSV)
		lists.POST("/:id/vessels/import", handlerset.Vessel.ImportCSV)
	}

	vessels := router.Group("/vessels")
	{
		vessels.GET("/conflicts", handlerset.Analytics.GetConflicts)
		vessels.PUT("/:id", handlerset.Vessel.UpdateVessel)
		vessels.DELETE("/:id", handlerset.Vessel.DeleteVessel)
	}

	documents := router.Group("/documents")
	{
		documents.GET("", handlerset.Document.GetDocuments)
		documents.POST("", handlerset.Document.CreateDocument)
		documents.GET("/:id", handlerset.Document.GetDocument)
		documents.PUT("/:id", handlerset.Document.UpdateDocument)
		documents.DELETE("/:id", handlerset.Document.DeleteDocument)
	}

	router.GET("/analytics/vessels/aggregated", handlerset.Analytics.GetAggregatedVessels)

	return router
}
