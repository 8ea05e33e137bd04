package workflow

import "testing"

func steps(ids ...[2]any) []Step {
	var out []Step
	for _, s := range ids {
		id := s[0].(string)
		var deps []string
		if s[1] != nil {
			deps = s[1].([]string)
		}
		out = append(out, Step{ID: id, Action: ActionValidate, DependsOn: deps})
	}
	return out
}

func TestParallelGroupsMatchesWorkedExample(t *testing.T) {
	def := steps(
		[2]any{"a", nil},
		[2]any{"b", nil},
		[2]any{"c", []string{"a"}},
		[2]any{"d", []string{"a", "b"}},
	)
	g, err := NewGraph(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	layers, err := g.ParallelGroups()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("expected 2 layers, got %d: %v", len(layers), layers)
	}
	if layers[0][0] != "a" || layers[0][1] != "b" {
		t.Fatalf("expected layer 0 = [a b], got %v", layers[0])
	}
	if layers[1][0] != "c" || layers[1][1] != "d" {
		t.Fatalf("expected layer 1 = [c d], got %v", layers[1])
	}
}

func TestTopologicalOrderPicksAlphabeticallyFirstReadyStep(t *testing.T) {
	def := steps(
		[2]any{"b", nil},
		[2]any{"a", nil},
		[2]any{"c", []string{"a", "b"}},
	)
	g, err := NewGraph(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, err := g.TopologicalOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestTopologicalOrderDetectsCycle(t *testing.T) {
	def := steps(
		[2]any{"a", []string{"b"}},
		[2]any{"b", []string{"a"}},
	)
	g, err := NewGraph(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = g.TopologicalOrder()
	if err == nil {
		t.Fatalf("expected a cycle error")
	}
	cyc, ok := err.(*CycleDetected)
	if !ok {
		t.Fatalf("expected *CycleDetected, got %T", err)
	}
	if len(cyc.Remaining) != 2 {
		t.Fatalf("expected both steps reported remaining, got %v", cyc.Remaining)
	}
}

func TestNewGraphRejectsDuplicateAndUnknownDependency(t *testing.T) {
	if _, err := NewGraph(steps([2]any{"a", nil}, [2]any{"a", nil})); err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if _, err := NewGraph(steps([2]any{"a", []string{"ghost"}})); err == nil {
		t.Fatalf("expected unknown dependency error")
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	layers := [][]string{{"a", "b"}, {"c", "d"}}
	nodes := Layout(layers)
	if len(nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(nodes))
	}
	if nodes[0].X != 80 || nodes[0].Y != 80 {
		t.Fatalf("expected first node at (80,80), got (%d,%d)", nodes[0].X, nodes[0].Y)
	}
	if nodes[1].X != 80 || nodes[1].Y != 230 {
		t.Fatalf("expected second node in layer 0 at (80,230), got (%d,%d)", nodes[1].X, nodes[1].Y)
	}
	if nodes[2].X != 280 || nodes[2].Y != 80 {
		t.Fatalf("expected first node of layer 1 at (280,80), got (%d,%d)", nodes[2].X, nodes[2].Y)
	}
}
