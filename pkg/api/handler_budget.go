package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-labs/agentcore/pkg/models"
)

// createBudgetHandler handles POST /api/v1/budgets.
func (s *Server) createBudgetHandler(c *gin.Context) {
	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantFromRequest(c)

	budget, err := s.budgetService.CreateBudget(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.BudgetResponse{AutonomyBudget: budget})
}

// listBudgetsHandler handles GET /api/v1/budgets.
func (s *Server) listBudgetsHandler(c *gin.Context) {
	limit := 0
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = parsed
	}

	resp, err := s.budgetService.ListBudgets(c.Request.Context(), tenantFromRequest(c), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// transitionBudgetHandler handles POST /api/v1/budgets/:id/transition.
func (s *Server) transitionBudgetHandler(c *gin.Context) {
	var req models.TransitionBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ApprovedBy == "" {
		req.ApprovedBy = extractAuthor(c)
	}

	budget, err := s.budgetService.Transition(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BudgetResponse{AutonomyBudget: budget})
}
