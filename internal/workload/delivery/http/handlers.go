package http

import (
	"github.com/gin-gonic/gin"

	"inbox-workload/pkg/response"
)

// Analyze godoc
// @Summary     Analyze one message
// @Description Extracts tasks from a single message, resolves deadlines and priorities, and schedules the result.
// @Tags        Workload
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Message to analyze"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workload/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output.Tasks, output.Snapshot))
}

// AnalyzeBatch godoc
// @Summary     Analyze a batch of messages
// @Description Runs one independent analysis per message and builds a single combined workload snapshot.
// @Tags        Workload
// @Accept      json
// @Produce     json
// @Param       body body analyzeBatchReq true "Messages to analyze"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workload/analyze/batch [POST]
func (h *handler) AnalyzeBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeBatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AnalyzeBatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeBatch: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output.Tasks, output.Snapshot))
}

// Snapshot godoc
// @Summary     Build a workload snapshot
// @Description Ranks caller-held tasks against the daily capacity budget without re-running extraction.
// @Tags        Workload
// @Accept      json
// @Produce     json
// @Param       body body snapshotReq true "Tasks to schedule"
// @Success     200 {object} snapshotOnlyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workload/snapshot [POST]
func (h *handler) Snapshot(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSnapshotReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Snapshot(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Snapshot: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSnapshotResp(output))
}
