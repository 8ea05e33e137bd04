package config

import "github.com/tarsy-labs/agentcore/pkg/gate"

// EngineThresholds converts the YAML-level threshold overrides into engine
// thresholds. An empty configuration returns nil so the engine falls back
// to its built-in defaults.
func (c *Config) EngineThresholds() []gate.Threshold {
	if len(c.GateThresholds) == 0 {
		return nil
	}
	out := make([]gate.Threshold, 0, len(c.GateThresholds))
	for _, t := range c.GateThresholds {
		out = append(out, gate.Threshold{
			Metric:        gate.Metric(t.Metric),
			Gate:          gate.Gate(t.Gate),
			Operator:      gate.Operator(t.Operator),
			Value:         t.Value,
			Action:        gate.Action(t.Action),
			BypassAllowed: t.BypassAllowed,
		})
	}
	return out
}
