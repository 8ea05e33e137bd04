package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-labs/agentcore/pkg/compare"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// recordSampleHandler handles POST /api/v1/compare/samples: the sample is
// persisted and fed into the in-memory population tracker.
func (s *Server) recordSampleHandler(c *gin.Context) {
	var req models.RecordSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantFromRequest(c)

	sample, err := s.sampleService.RecordSample(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if s.population != nil {
		s.population.Add(req.AgentName, req.Metric, req.Value)
	}

	c.JSON(http.StatusCreated, gin.H{"sample_id": sample.ID})
}

// leaderboardHandler handles GET /api/v1/compare/leaderboard.
func (s *Server) leaderboardHandler(c *gin.Context) {
	resp := models.LeaderboardResponse{Entries: []models.LeaderboardEntry{}}
	if s.eloTable != nil {
		for _, r := range s.eloTable.Snapshot() {
			resp.Entries = append(resp.Entries, models.LeaderboardEntry{
				Agent:       r.Agent,
				Rating:      r.Current,
				PeakRating:  r.Peak,
				GamesPlayed: r.GamesPlayed,
				Wins:        r.Wins,
				Losses:      r.Losses,
				Draws:       r.Draws,
			})
		}
	}
	c.JSON(http.StatusOK, resp)
}

// agentProfileHandler handles GET /api/v1/compare/profile/:agent.
func (s *Server) agentProfileHandler(c *gin.Context) {
	agent := unescapeParam(c.Param("agent"))
	if s.population == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "comparative core not initialized"})
		return
	}

	eloRating := compare.DefaultRating
	if s.eloTable != nil {
		if r, ok := s.eloTable.Get(agent); ok {
			eloRating = r.Current
		}
	}

	profile := compare.NewComparator(s.population).BuildProfile(agent, eloRating)
	c.JSON(http.StatusOK, models.AgentProfileResponse{
		Agent:       profile.Agent,
		Percentiles: profile.MetricPercentiles,
		Strengths:   profile.Strengths,
		Weaknesses:  profile.Weaknesses,
	})
}
