package autonomy

import (
	"encoding/json"
	"fmt"
	"time"
)

// budgetSpec is the JSON shape a persisted budget's spec column decodes
// into. Field names follow the YAML/JSON convention used by the API.
type budgetSpec struct {
	Scope struct {
		InScope    []string `json:"in_scope"`
		OutOfScope []string `json:"out_of_scope"`
	} `json:"scope"`
	Files struct {
		Read  []string `json:"read"`
		Write []string `json:"write"`
		Deny  []string `json:"deny"`
	} `json:"files"`
	Commands []struct {
		Executable string `json:"executable"`
		ArgsRegex  string `json:"args_regex"`
		CallCap    int    `json:"call_cap"`
	} `json:"commands"`
	Network struct {
		Enabled        bool     `json:"enabled"`
		AllowedDomains []string `json:"allowed_domains"`
		DeniedDomains  []string `json:"denied_domains"`
		RequestCap     int      `json:"request_cap"`
	} `json:"network"`
	Limits struct {
		MaxIterations      int `json:"max_iterations"`
		MaxDurationMinutes int `json:"max_duration_minutes"`
		MaxFilesModified   int `json:"max_files_modified"`
		MaxLinesChanged    int `json:"max_lines_changed"`
		MaxToolCalls       int `json:"max_tool_calls"`
	} `json:"limits"`
	StopConditions []struct {
		Description string `json:"description"`
		Action      string `json:"action"`
	} `json:"stop_conditions"`
	EscalationTriggers []struct {
		Description string `json:"description"`
		Target      string `json:"target"`
		Urgency     string `json:"urgency"`
	} `json:"escalation_triggers"`
	DefaultEscalationTarget string `json:"default_escalation_target"`
}

// DecodeSpec builds a Budget from a persisted spec document plus the
// row-level identity fields the spec column does not carry.
func DecodeSpec(id, agentName string, status BudgetStatus, spec map[string]any, createdAt time.Time, expiresAt *time.Time) (*Budget, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("autonomy: failed to re-encode budget spec: %w", err)
	}
	var decoded budgetSpec
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("autonomy: invalid budget spec: %w", err)
	}

	b := &Budget{
		ID:        id,
		AgentName: agentName,
		Status:    status,
		Scope: Scope{
			InScope:    decoded.Scope.InScope,
			OutOfScope: decoded.Scope.OutOfScope,
		},
		Files: FilePermissions{
			Read:  decoded.Files.Read,
			Write: decoded.Files.Write,
			Deny:  decoded.Files.Deny,
		},
		Network: NetworkScope{
			Enabled:        decoded.Network.Enabled,
			AllowedDomains: decoded.Network.AllowedDomains,
			DeniedDomains:  decoded.Network.DeniedDomains,
			RequestCap:     decoded.Network.RequestCap,
		},
		Limits: ResourceLimits{
			MaxIterations:      decoded.Limits.MaxIterations,
			MaxDurationMinutes: decoded.Limits.MaxDurationMinutes,
			MaxFilesModified:   decoded.Limits.MaxFilesModified,
			MaxLinesChanged:    decoded.Limits.MaxLinesChanged,
			MaxToolCalls:       decoded.Limits.MaxToolCalls,
		},
		DefaultEscalationTarget: decoded.DefaultEscalationTarget,
		CreatedAt:               createdAt,
		ExpiresAt:               expiresAt,
	}
	for _, c := range decoded.Commands {
		b.Commands = append(b.Commands, CommandPermission{
			Executable: c.Executable, ArgsRegex: c.ArgsRegex, CallCap: c.CallCap,
		})
	}
	for _, sc := range decoded.StopConditions {
		b.StopConditions = append(b.StopConditions, StopCondition{
			Description: sc.Description, Action: StopAction(sc.Action),
		})
	}
	for _, et := range decoded.EscalationTriggers {
		b.EscalationTriggers = append(b.EscalationTriggers, EscalationTrigger{
			Description: et.Description, Target: et.Target, Urgency: Urgency(et.Urgency),
		})
	}
	return b, nil
}
