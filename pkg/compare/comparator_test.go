package compare

import "testing"

func TestCompareAgentsMissingDataReturnsFalse(t *testing.T) {
	pop := NewPopulation()
	pop.Add("a", "success_rate", 0.9)
	c := NewComparator(pop)

	if _, ok := c.CompareAgents("a", "b", "success_rate"); ok {
		t.Fatalf("comparing against an agent with no samples must report ok=false")
	}
}

func TestCompareAgentsDrawThreshold(t *testing.T) {
	pop := NewPopulation()
	pop.Add("a", "m", 0.900)
	pop.Add("b", "m", 0.905)
	c := NewComparator(pop)

	res, ok := c.CompareAgents("a", "b", "m")
	if !ok {
		t.Fatalf("expected comparison to succeed")
	}
	if res.Outcome != Draw {
		t.Fatalf("a margin within the draw threshold should be a draw, got %s", res.Outcome)
	}
}

func TestBuildProfileClassifiesStrengthsAndWeaknesses(t *testing.T) {
	pop := NewPopulation()
	pop.Add("strong", "m1", 100)
	pop.Add("weak", "m1", 1)
	pop.Add("strong", "m2", 1)
	pop.Add("weak", "m2", 100)

	c := NewComparator(pop)
	profile := c.BuildProfile("strong", 1500)

	if len(profile.Strengths) != 1 || profile.Strengths[0] != "m1" {
		t.Fatalf("expected m1 to be a strength, got %+v", profile.Strengths)
	}
	if len(profile.Weaknesses) != 1 || profile.Weaknesses[0] != "m2" {
		t.Fatalf("expected m2 to be a weakness, got %+v", profile.Weaknesses)
	}
}

func TestPValueRequiresTwoSamplesPerAgent(t *testing.T) {
	pop := NewPopulation()
	pop.Add("a", "m", 1)
	pop.Add("b", "m", 1)
	pop.Add("b", "m", 2)
	c := NewComparator(pop)

	res, ok := c.CompareAgents("a", "b", "m")
	if !ok {
		t.Fatalf("expected comparison to succeed even without a p-value")
	}
	if res.PValue != nil {
		t.Fatalf("expected nil p-value when agent a has fewer than 2 samples")
	}
}
