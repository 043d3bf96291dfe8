package http

import (
	"github.com/gin-gonic/gin"

	"inbox-workload/internal/workload"
	"inbox-workload/pkg/log"
)

// Handler is the public interface for the workload HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	AnalyzeBatch(c *gin.Context)
	Snapshot(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc workload.UseCase
}

// New creates a new HTTP handler for the workload domain.
func New(l log.Logger, uc workload.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
