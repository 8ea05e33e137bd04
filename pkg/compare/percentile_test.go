package compare

import "testing"

func TestPercentileHighestGetsHundred(t *testing.T) {
	values := map[string]float64{"a": 10, "b": 20, "c": 30}
	ranks := PercentileRanks(values)
	if ranks["c"] != 100 {
		t.Fatalf("expected the strictly-highest value to rank 100, got %.2f", ranks["c"])
	}
	for agent, pct := range ranks {
		if pct < 0 || pct > 100 {
			t.Fatalf("percentile for %s out of [0,100]: %.2f", agent, pct)
		}
	}
}

func TestPercentileSingleAgent(t *testing.T) {
	ranks := PercentileRanks(map[string]float64{"solo": 42})
	if ranks["solo"] != 100 {
		t.Fatalf("a lone agent should rank 100")
	}
}
