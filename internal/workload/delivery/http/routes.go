package http

import (
	"github.com/gin-gonic/gin"

	"inbox-workload/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	wl := rg.Group("/workload")
	{
		wl.POST("/analyze", mw.RequestID(), h.Analyze)
		wl.POST("/analyze/batch", mw.RequestID(), h.AnalyzeBatch)
		wl.POST("/snapshot", mw.RequestID(), h.Snapshot)
	}
}
