package compare

import "testing"

func TestEloSymmetricWin(t *testing.T) {
	table := NewEloTable()
	newA, newB := table.Update("agent-a", "agent-b", Win)

	if newA != 1516.00 {
		t.Fatalf("expected agent A rating 1516.00, got %.2f", newA)
	}
	if newB != 1484.00 {
		t.Fatalf("expected agent B rating 1484.00, got %.2f", newB)
	}

	a, _ := table.Get("agent-a")
	b, _ := table.Get("agent-b")
	if a.GamesPlayed != 1 || b.GamesPlayed != 1 {
		t.Fatalf("expected 1 game played each")
	}
	if a.Wins != 1 || a.Losses != 0 {
		t.Fatalf("expected agent A win count 1, loss count 0, got %+v", a)
	}
	if b.Wins != 0 || b.Losses != 1 {
		t.Fatalf("expected agent B win count 0, loss count 1, got %+v", b)
	}
}

func TestEloZeroSumWhenKFactorsMatch(t *testing.T) {
	table := NewEloTable()
	a := table.GetOrCreate("a")
	b := table.GetOrCreate("b")
	before := a.Current + b.Current

	table.Update("a", "b", Win)

	after := a.Current + b.Current
	if diff := after - before; diff < -0.01 || diff > 0.01 {
		t.Fatalf("expected zero-sum update when K factors match, delta=%.4f", diff)
	}
}

func TestEloAdaptiveKFactor(t *testing.T) {
	if EffectiveK(0) != 32 {
		t.Fatalf("expected K=32 for a new agent")
	}
	if EffectiveK(29) != 32 {
		t.Fatalf("expected K=32 below the provisional threshold")
	}
	if EffectiveK(30) != 16 {
		t.Fatalf("expected K=16 at the provisional threshold")
	}
}
