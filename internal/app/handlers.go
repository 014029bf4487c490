package app

import (
	"github.com/portside/vesselwatch-backend/internal/http/handlers"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Watchlist *handlers.WatchlistHandler
	Vessel    *handlers.VesselHandler
	Document  *handlers.DocumentHandler
	Analytics *handlers.AnalyticsHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    handlers.NewHealthHandler(),
		Watchlist: handlers.NewWatchlistHandler(log, serviceset.Watchlist),
		Vessel:    handlers.NewVesselHandler(log, serviceset.Vessel),
		Document:  handlers.NewDocumentHandler(log, serviceset.Document),
		Analytics: handlers.NewAnalyticsHandler(log, serviceset.Reconcile),
	}
}
