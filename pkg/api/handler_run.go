package api

import (
	"net/http"
	"strconv"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tarsy-labs/agentcore/ent/workflowrun"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// submitRunRequest is the POST /api/v1/runs body.
type submitRunRequest struct {
	WorkflowName string         `json:"workflow_name" binding:"required"`
	Trigger      string         `json:"trigger"`
	Inputs       map[string]any `json:"inputs"`
}

// submitRunHandler handles POST /api/v1/runs.
func (s *Server) submitRunHandler(c *gin.Context) {
	var req submitRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := s.runService.SubmitRun(c.Request.Context(), models.SubmitRunRequest{
		RunID:        uuid.New().String(),
		TenantID:     tenantFromRequest(c),
		WorkflowName: req.WorkflowName,
		Trigger:      req.Trigger,
		Inputs:       req.Inputs,
		Author:       extractAuthor(c),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, RunSubmittedResponse{
		RunID:   run.ID,
		Status:  string(run.Status),
		Message: "run queued",
	})
}

// listRunsHandler handles GET /api/v1/runs.
func (s *Server) listRunsHandler(c *gin.Context) {
	filters := models.RunFilters{
		TenantID:     tenantFromRequest(c),
		Status:       c.Query("status"),
		WorkflowName: c.Query("workflow"),
		Author:       c.Query("author"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filters.Offset = offset
	}

	resp, err := s.runService.ListRuns(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c *gin.Context) {
	withSteps := c.Query("with_steps") == "true"
	run, err := s.runService.GetRun(c.Request.Context(), c.Param("id"), withSteps)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.RunResponse{WorkflowRun: run})
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel. Cancellation is
// two-phase: flip the DB status to cancelling, then signal the executing
// pod. If the run is executing on another pod, the status flip plus its
// next heartbeat observation still lands the cancellation.
func (s *Server) cancelRunHandler(c *gin.Context) {
	runID := c.Param("id")

	run, err := s.runService.GetRun(c.Request.Context(), runID, false)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	switch run.Status {
	case workflowrun.StatusPending, workflowrun.StatusInProgress:
	default:
		c.JSON(http.StatusConflict, gin.H{"error": "run is not in a cancellable state"})
		return
	}

	if err := s.runService.UpdateRunStatus(c.Request.Context(), runID, workflowrun.StatusCancelling, ""); err != nil {
		abortWithServiceError(c, err)
		return
	}

	if s.workerPool != nil && s.workerPool.CancelRun(runID) {
		c.JSON(http.StatusOK, CancelResponse{RunID: runID, Message: "cancellation signalled"})
		return
	}
	c.JSON(http.StatusOK, CancelResponse{RunID: runID, Message: "cancellation requested"})
}

// timelineHandler handles GET /api/v1/runs/:id/timeline.
func (s *Server) timelineHandler(c *gin.Context) {
	events, err := s.timelineService.GetTimeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// runTraceHandler handles GET /api/v1/runs/:id/trace.
func (s *Server) runTraceHandler(c *gin.Context) {
	resp, err := s.interactionService.GetRunTrace(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// unescapeParam decodes a path parameter that may arrive URL-encoded.
func unescapeParam(raw string) string {
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
