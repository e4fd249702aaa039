package http

import (
	"github.com/gin-gonic/gin"

	"task-nlp-service/internal/parse"
	pkgLog "task-nlp-service/pkg/log"
)

// Handler is the public interface for the parse HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc parse.UseCase
}

// New creates a new parse HTTP handler.
func New(l pkgLog.Logger, uc parse.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
