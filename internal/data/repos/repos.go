package repos

import (
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/data/repos/document"
	"github.com/portside/vesselwatch-backend/internal/data/repos/vessel"
	"github.com/portside/vesselwatch-backend/internal/data/repos/watchlist"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type WatchlistRepo = watchlist.WatchlistRepo
type VesselRepo = vessel.VesselRepo
type DocumentRepo = document.DocumentRepo

func NewWatchlistRepo(db *gorm.DB, baseLog *logger.Logger) WatchlistRepo {
	return watchlist.NewWatchlistRepo(db, baseLog)
}

func NewVesselRepo(db *gorm.DB, baseLog *logger.Logger) VesselRepo {
	return vessel.NewVesselRepo(db, baseLog)
}

func NewDocumentRepo(db *gorm.DB, baseLog *logger.Logger) DocumentRepo {
	return document.NewDocumentRepo(db, baseLog)
}
