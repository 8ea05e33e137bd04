package models

// RecordSampleRequest contains fields for recording a comparative sample.
type RecordSampleRequest struct {
	TenantID  string  `json:"tenant_id"`
	AgentName string  `json:"agent_name"`
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
	TaskID    string  `json:"task_id,omitempty"`
}

// LeaderboardEntry is one row of the Elo leaderboard.
type LeaderboardEntry struct {
	Agent       string  `json:"agent"`
	Rating      float64 `json:"rating"`
	PeakRating  float64 `json:"peak_rating"`
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Draws       int     `json:"draws"`
}

// LeaderboardResponse contains the current Elo standings.
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// AgentProfileResponse labels an agent's strengths and weaknesses by
// population percentile.
type AgentProfileResponse struct {
	Agent       string             `json:"agent"`
	Percentiles map[string]float64 `json:"percentiles"`
	Strengths   []string           `json:"strengths"`
	Weaknesses  []string           `json:"weaknesses"`
}
