package http

import (
	"github.com/gin-gonic/gin"

	"inbox-workload/internal/workload"
	"inbox-workload/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown errors
// never leak their message to the client.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case workload.ErrMissingMessageID, workload.ErrNoMessages:
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
