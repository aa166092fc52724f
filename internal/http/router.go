package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/cantinadirect/shipping-backend/internal/http/handlers"
	httpMW "github.com/cantinadirect/shipping-backend/internal/http/middleware"
	"github.com/cantinadirect/shipping-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	ServiceName     string
	DocumentHandler *httpH.DocumentHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.DocumentHandler != nil {
			api.GET("/shipments/:id/documents/:type", cfg.DocumentHandler.GetDocument)
			api.GET("/shipments/:id/packages.csv", cfg.DocumentHandler.GetPackagesCSV)
		}
	}

	return r
}
