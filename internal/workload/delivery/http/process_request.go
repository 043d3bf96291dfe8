package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeReq binds and validates the single-message analyze body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAnalyzeBatchReq binds and validates the batch analyze body.
func (h *handler) processAnalyzeBatchReq(c *gin.Context) (analyzeBatchReq, error) {
	var req analyzeBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSnapshotReq binds and validates the snapshot body.
func (h *handler) processSnapshotReq(c *gin.Context) (snapshotReq, error) {
	var req snapshotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
