package gate

import "testing"

func TestEvaluatePRGateWarnsOnReworkBreach(t *testing.T) {
	e := NewEngine(nil)
	report := e.Evaluate(GatePR, map[Metric]float64{
		MetricSuccessRate:    85.0,
		MetricReworkRate:     35.0,
		MetricScopeAdherence: 92.0,
	}, nil)

	if report.Overall != ResultWarn {
		t.Fatalf("expected overall warn, got %s", report.Overall)
	}
	var sawReworkBreach bool
	for _, c := range report.CheckResults {
		if c.Threshold.Metric == MetricReworkRate {
			sawReworkBreach = true
			if c.Passed {
				t.Fatalf("rework rate of 35 should breach the <=30 PR threshold")
			}
		}
	}
	if !sawReworkBreach {
		t.Fatalf("expected a rework-rate check result for G-PR")
	}
}

func TestEvaluateRecordsConfiguredAction(t *testing.T) {
	e := NewEngine([]Threshold{
		{Metric: MetricDiffSize, Gate: GateMonitor, Operator: OpLTE, Value: 500, Action: ActionAlert},
	})
	report := e.Evaluate(GateMonitor, map[Metric]float64{MetricDiffSize: 900}, nil)

	if len(report.CheckResults) != 1 {
		t.Fatalf("expected one check result, got %d", len(report.CheckResults))
	}
	c := report.CheckResults[0]
	if c.Passed {
		t.Fatalf("diff size 900 should breach the <=500 threshold")
	}
	if c.ActionTaken != ActionAlert {
		t.Fatalf("check result must carry the threshold's configured action, got %s", c.ActionTaken)
	}
	if report.Overall != ResultPass {
		t.Fatalf("an alert-action breach neither warns nor fails, got %s", report.Overall)
	}

	// The configured action is recorded on passing checks too.
	passing := e.Evaluate(GateMonitor, map[Metric]float64{MetricDiffSize: 100}, nil)
	if passing.CheckResults[0].ActionTaken != ActionAlert {
		t.Fatalf("passing check must still carry the configured action, got %s", passing.CheckResults[0].ActionTaken)
	}
}

func TestEvaluateBlocksOnSuccessRateBreach(t *testing.T) {
	e := NewEngine(nil)
	report := e.Evaluate(GateRelease, map[Metric]float64{MetricSuccessRate: 80.0}, nil)
	if report.Overall != ResultFail {
		t.Fatalf("success rate 80 < 95 on G-REL must fail, got %s", report.Overall)
	}
}

func TestEvaluateFailsOnNonPassingMergeTask(t *testing.T) {
	e := NewEngine(nil)
	report := e.Evaluate(GateMerge, map[Metric]float64{
		MetricSuccessRate:    95.0,
		MetricReworkRate:     5.0,
		MetricScopeAdherence: 100.0,
	}, []TaskRunResult{{ItemID: "GT-CRITICAL-1", Result: TaskFail}})

	if report.Overall != ResultFail {
		t.Fatalf("a failing canonical task on G-MRG must fail the gate, got %s", report.Overall)
	}
}

func TestEvaluateSkipDoesNotBlock(t *testing.T) {
	e := NewEngine(nil)
	report := e.Evaluate(GateMerge, map[Metric]float64{
		MetricSuccessRate:    95.0,
		MetricReworkRate:     5.0,
		MetricScopeAdherence: 100.0,
	}, []TaskRunResult{{ItemID: "GT-CRITICAL-1", Result: TaskSkip}})

	if report.Overall != ResultPass {
		t.Fatalf("a skipped task must not block the gate, got %s", report.Overall)
	}
}

func TestRequiredTagMapping(t *testing.T) {
	cases := map[Gate]GoldenTag{
		GatePR:      TagSmoke,
		GateMerge:   TagCritical,
		GateRelease: TagRelease,
		GateMonitor: TagOptional,
	}
	for g, want := range cases {
		if got := RequiredTag[g]; got != want {
			t.Fatalf("gate %s: want tag %s, got %s", g, want, got)
		}
	}
}

func TestDetectTaskRegression(t *testing.T) {
	d := Detector{}
	baseline := Baseline{TaskResults: []TaskRunResult{{ItemID: "GT-01", Result: TaskPass}}}
	current := []TaskRunResult{{ItemID: "GT-01", Result: TaskFail}}

	regs := d.Detect(baseline, nil, current, nil)
	if len(regs) != 1 || regs[0].Indicator != IndicatorTaskNowFails {
		t.Fatalf("expected one RI-01 regression, got %+v", regs)
	}
	if regs[0].Severity != RegressionHigh {
		t.Fatalf("RI-01 must be high severity")
	}
}

func TestDetectThresholdBreachDirection(t *testing.T) {
	d := Detector{}
	baseline := Baseline{Metrics: map[Metric]float64{MetricSuccessRate: 92.0}}
	current := map[Metric]float64{MetricSuccessRate: 85.0}
	thresholds := map[Metric]float64{MetricSuccessRate: 90.0}

	regs := d.Detect(baseline, current, nil, thresholds)
	if len(regs) != 1 || regs[0].Indicator != IndicatorMetricBreach {
		t.Fatalf("expected a metric-breach regression when success rate drops below threshold, got %+v", regs)
	}
}

func TestDetectTimeToGreenIncrease(t *testing.T) {
	d := Detector{}
	baseline := Baseline{Metrics: map[Metric]float64{MetricTimeToGreen: 100}}
	current := map[Metric]float64{MetricTimeToGreen: 200}

	regs := d.Detect(baseline, current, nil, nil)
	if len(regs) != 1 || regs[0].Indicator != IndicatorTimeToGreenUp {
		t.Fatalf("expected RI-04 for a >1.5x time-to-green increase, got %+v", regs)
	}
}
