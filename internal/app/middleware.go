package app

import (
	"github.com/gin-gonic/gin"

	"github.com/portside/vesselwatch-backend/internal/http/middleware"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type Middleware struct {
	CORS         gin.HandlerFunc
	TraceContext gin.HandlerFunc
	RequestLog   gin.HandlerFunc
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		CORS:         middleware.CORS(),
		TraceContext: middleware.AttachTraceContext(),
		RequestLog:   middleware.RequestLogger(log),
	}
}
