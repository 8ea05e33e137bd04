package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-labs/agentcore/pkg/models"
)

// evaluateGateRequest is the POST /api/v1/gates/:gate/evaluate body.
type evaluateGateRequest struct {
	ReleaseID   string                  `json:"release_id"`
	Metrics     map[string]float64      `json:"metrics" binding:"required"`
	TaskResults []models.GateTaskResult `json:"task_results"`
}

// evaluateGateHandler handles POST /api/v1/gates/:gate/evaluate.
func (s *Server) evaluateGateHandler(c *gin.Context) {
	var req evaluateGateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, row, err := s.gateService.Evaluate(c.Request.Context(), models.EvaluateGateRequest{
		TenantID:    tenantFromRequest(c),
		Gate:        unescapeParam(c.Param("gate")),
		ReleaseID:   req.ReleaseID,
		Metrics:     req.Metrics,
		TaskResults: req.TaskResults,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report_id": row.ID,
		"gate":      string(report.Gate),
		"overall":   string(report.Overall),
		"checks":    row.ThresholdResults,
	})
}

// listGateReportsHandler handles GET /api/v1/gates/reports.
func (s *Server) listGateReportsHandler(c *gin.Context) {
	limit := 0
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = parsed
	}

	resp, err := s.gateService.ListReports(c.Request.Context(), tenantFromRequest(c), c.Query("gate"), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
