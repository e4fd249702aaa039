package http

import (
	"github.com/gin-gonic/gin"

	"task-nlp-service/internal/middleware"
)

// RegisterRoutes wires the parse endpoints under the given router group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", mw.RateLimit(), h.Parse)
}
