package workflow

import (
	"fmt"
	"sort"
)

// CycleDetected is returned by TopologicalOrder when the dependency
// graph contains a cycle.
type CycleDetected struct {
	Remaining []string
}

func (e *CycleDetected) Error() string {
	return fmt.Sprintf("workflow: cycle detected among steps %v", e.Remaining)
}

// Graph is a workflow's step dependency graph, built once from its step
// list and reused by both TopologicalOrder and ParallelGroups.
type Graph struct {
	steps   map[string]Step
	order   []string // declaration order, for deterministic iteration
}

// NewGraph builds a Graph from a step list. Returns an error if step IDs
// are duplicated or a depends_on target does not exist in the same list.
func NewGraph(steps []Step) (*Graph, error) {
	g := &Graph{steps: make(map[string]Step, len(steps))}
	for _, s := range steps {
		if _, dup := g.steps[s.ID]; dup {
			return nil, fmt.Errorf("workflow: duplicate step id %q", s.ID)
		}
		g.steps[s.ID] = s
		g.order = append(g.order, s.ID)
	}
	for _, s := range steps {
		for _, dep := range s.DependsOn {
			if _, ok := g.steps[dep]; !ok {
				return nil, fmt.Errorf("workflow: step %q depends on unknown step %q", s.ID, dep)
			}
		}
	}
	return g, nil
}

// TopologicalOrder returns a deterministic linear ordering of step IDs:
// repeatedly selects the alphabetically first step with zero remaining
// in-degree.
func (g *Graph) TopologicalOrder() ([]string, error) {
	inDegree := make(map[string]int, len(g.steps))
	successors := make(map[string][]string, len(g.steps))
	for id, s := range g.steps {
		inDegree[id] += 0
		for _, dep := range s.DependsOn {
			inDegree[id]++
			successors[dep] = append(successors[dep], id)
		}
	}

	remaining := make(map[string]bool, len(g.steps))
	for id := range g.steps {
		remaining[id] = true
	}

	var out []string
	for len(remaining) > 0 {
		var ready []string
		for id := range remaining {
			if inDegree[id] == 0 {
				ready = append(ready, id)
			}
		}
		if len(ready) == 0 {
			rem := make([]string, 0, len(remaining))
			for id := range remaining {
				rem = append(rem, id)
			}
			sort.Strings(rem)
			return nil, &CycleDetected{Remaining: rem}
		}
		sort.Strings(ready)
		next := ready[0]
		out = append(out, next)
		delete(remaining, next)
		for _, succ := range successors[next] {
			inDegree[succ]--
		}
	}
	return out, nil
}

// ParallelGroups returns the workflow's dependency layers: layer 0 holds
// every step with an empty depends_on; layer k+1 holds every
// not-yet-emitted step whose full dependency set is contained in layers
// 0..k.
func (g *Graph) ParallelGroups() ([][]string, error) {
	emitted := make(map[string]bool, len(g.steps))
	var layers [][]string

	for len(emitted) < len(g.steps) {
		var layer []string
		for _, id := range g.order {
			if emitted[id] {
				continue
			}
			s := g.steps[id]
			if allSatisfied(s.DependsOn, emitted) {
				layer = append(layer, id)
			}
		}
		if len(layer) == 0 {
			var rem []string
			for id := range g.steps {
				if !emitted[id] {
					rem = append(rem, id)
				}
			}
			sort.Strings(rem)
			return nil, &CycleDetected{Remaining: rem}
		}
		sort.Strings(layer)
		layers = append(layers, layer)
		for _, id := range layer {
			emitted[id] = true
		}
	}
	return layers, nil
}

func allSatisfied(deps []string, emitted map[string]bool) bool {
	for _, d := range deps {
		if !emitted[d] {
			return false
		}
	}
	return true
}

// Layout assigns each step a deterministic (x, y) position for
// rendering without a third-party graph layout engine: (80 + layer*200,
// 80 + index-within-layer*150).
func Layout(layers [][]string) []Node {
	var nodes []Node
	for layerIdx, layer := range layers {
		for nodeIdx, stepID := range layer {
			nodes = append(nodes, Node{
				StepID: stepID,
				Layer:  layerIdx,
				X:      80 + layerIdx*200,
				Y:      80 + nodeIdx*150,
			})
		}
	}
	return nodes
}
