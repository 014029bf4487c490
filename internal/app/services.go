package app

import (
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/platform/logger"
	"github.com/portside/vesselwatch-backend/internal/services"
)

type Services struct {
	Watchlist services.WatchlistService
	Vessel    services.VesselService
	Document  services.DocumentService
	Reconcile services.ReconcileService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Watchlist: services.NewWatchlistService(db, log, reposet.Watchlist, reposet.Vessel, clients.ReportCache),
		Vessel:    services.NewVesselService(db, log, reposet.Watchlist, reposet.Vessel, clients.ReportCache),
		Document:  services.NewDocumentService(db, log, reposet.Document),
		Reconcile: services.NewReconcileService(db, log, reposet.Watchlist, reposet.Vessel, clients.ReportCache),
	}
}
