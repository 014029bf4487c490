package app

import (
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/data/repos"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type Repos struct {
	Watchlist repos.WatchlistRepo
	Vessel    repos.VesselRepo
	Document  repos.DocumentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Watchlist: repos.NewWatchlistRepo(db, log),
		Vessel:    repos.NewVesselRepo(db, log),
		Document:  repos.NewDocumentRepo(db, log),
	}
}
