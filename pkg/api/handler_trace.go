package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-labs/agentcore/pkg/models"
)

// listTracesHandler handles GET /api/v1/traces.
// Filters: status, task_id; tenant comes from the request. Default limit
// is 100, applied by the service.
func (s *Server) listTracesHandler(c *gin.Context) {
	filters := models.TraceFilters{
		TenantID: tenantFromRequest(c),
		Status:   c.Query("status"),
		TaskID:   c.Query("task_id"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filters.Offset = offset
	}

	resp, err := s.traceService.ListTraces(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listFailuresHandler handles GET /api/v1/failures.
func (s *Server) listFailuresHandler(c *gin.Context) {
	filters := models.FailureFilters{
		TenantID: tenantFromRequest(c),
		Category: c.Query("category"),
		Subcode:  c.Query("subcode"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filters.Limit = limit
	}

	resp, err := s.traceService.ListFailures(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
