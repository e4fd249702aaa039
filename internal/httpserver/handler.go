package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-nlp-service/internal/middleware"
	parseHTTP "task-nlp-service/internal/parse/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
	return nil
}

func (srv HTTPServer) registerMiddlewares() middleware.Middleware {
	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l, srv.rateLimitPerMin)
	srv.gin.Use(mw.RequestID())

	return mw
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	parseHTTP.RegisterRoutes(api.Group("/parse"), srv.parseHandler, mw)

	srv.l.Infof(ctx, "Parse domain registered at POST /api/v1/parse")
}
