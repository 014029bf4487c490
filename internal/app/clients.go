package app

import (
	"github.com/portside/vesselwatch-backend/internal/clients/redis"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type Clients struct {
	ReportCache redis.ReportCache
}

// wireClients builds optional external clients. A missing REDIS_ADDR leaves
// the report cache nil, which the services treat as caching disabled.
func wireClients(log *logger.Logger) Clients {
	log.Info("Wiring clients...")
	cache, err := redis.NewReportCache(log)
	if err != nil {
		log.Warn("Report cache unavailable, continuing without it", "error", err)
		cache = nil
	}
	return Clients{ReportCache: cache}
}
