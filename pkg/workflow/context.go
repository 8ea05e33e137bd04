package workflow

import (
	"regexp"
	"sync"
)

// stepContext is the shared, mutex-protected map of workflow inputs and
// completed steps' outputs that later steps resolve their own inputs
// against.
type stepContext struct {
	mu      sync.Mutex
	inputs  map[string]any
	outputs map[string]map[string]any // stepID -> output
}

func newStepContext(workflowInputs map[string]any) *stepContext {
	return &stepContext{
		inputs:  workflowInputs,
		outputs: make(map[string]map[string]any),
	}
}

func (c *stepContext) setStepOutput(stepID string, output map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outputs[stepID] = output
}

// snapshot returns a defensive copy of every step's output, keyed by
// step ID, so callers can't mutate the runner's internal state.
func (c *stepContext) snapshot() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]any, len(c.outputs))
	for id, o := range c.outputs {
		out[id] = o
	}
	return out
}

var refPattern = regexp.MustCompile(`^\$\{(steps|inputs)\.([^.}]+)(?:\.([^}]+))?\}$`)

// resolveInputs expands "${steps.<id>.<field>}" and "${inputs.<name>}"
// string references in a step's declared inputs against the shared
// context, merging in the workflow-level inputs for anything left
// unreferenced. Non-reference values pass through unchanged.
func (c *stepContext) resolveInputs(declared map[string]any) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	resolved := make(map[string]any, len(declared)+len(c.inputs))
	for k, v := range c.inputs {
		resolved[k] = v
	}
	for k, v := range declared {
		resolved[k] = c.resolveValue(v)
	}
	return resolved
}

func (c *stepContext) resolveValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	m := refPattern.FindStringSubmatch(s)
	if m == nil {
		return v
	}
	switch m[1] {
	case "inputs":
		if val, ok := c.inputs[m[2]]; ok {
			return val
		}
		return nil
	case "steps":
		out, ok := c.outputs[m[2]]
		if !ok {
			return nil
		}
		if m[3] == "" {
			return out
		}
		return out[m[3]]
	default:
		return v
	}
}
