// Package gate implements the threshold-based regression gate engine
//: per-gate metric thresholds, canonical task result
// gating, and baseline regression detection.
package gate

import "time"

// Gate identifies a decision point in the release pipeline.
type Gate string

const (
	GatePR      Gate = "G-PR"
	GateMerge   Gate = "G-MRG"
	GateRelease Gate = "G-REL"
	GateMonitor Gate = "G-MON"
)

// Metric identifies one of the five fixed evaluation metrics.
type Metric string

const (
	MetricSuccessRate    Metric = "M-01"
	MetricTimeToGreen    Metric = "M-02"
	MetricReworkRate     Metric = "M-03"
	MetricDiffSize       Metric = "M-04"
	MetricScopeAdherence Metric = "M-05"
)

// Operator is a threshold comparison operator.
type Operator string

const (
	OpGTE Operator = "gte"
	OpLTE Operator = "lte"
	OpEQ  Operator = "eq"
	OpGT  Operator = "gt"
	OpLT  Operator = "lt"
)

// Action is what happens when a threshold is breached.
type Action string

const (
	ActionBlock Action = "block"
	ActionWarn  Action = "warn"
	ActionAlert Action = "alert"
)

// Threshold is a single threshold rule bound to one gate and metric.
type Threshold struct {
	Metric        Metric
	Gate          Gate
	Operator      Operator
	Value         float64
	Action        Action
	BypassAllowed bool
}

func (t Threshold) check(actual float64) bool {
	switch t.Operator {
	case OpGTE:
		return actual >= t.Value
	case OpLTE:
		return actual <= t.Value
	case OpEQ:
		return actual == t.Value
	case OpGT:
		return actual > t.Value
	case OpLT:
		return actual < t.Value
	default:
		return false
	}
}

// DefaultThresholds are the built-in thresholds.
var DefaultThresholds = []Threshold{
	{Metric: MetricSuccessRate, Gate: GatePR, Operator: OpGTE, Value: 80, Action: ActionBlock},
	{Metric: MetricSuccessRate, Gate: GateMerge, Operator: OpGTE, Value: 90, Action: ActionBlock},
	{Metric: MetricSuccessRate, Gate: GateRelease, Operator: OpGTE, Value: 95, Action: ActionBlock},

	{Metric: MetricReworkRate, Gate: GatePR, Operator: OpLTE, Value: 30, Action: ActionWarn},
	{Metric: MetricReworkRate, Gate: GateMerge, Operator: OpLTE, Value: 20, Action: ActionBlock},
	{Metric: MetricReworkRate, Gate: GateRelease, Operator: OpLTE, Value: 10, Action: ActionBlock},

	{Metric: MetricScopeAdherence, Gate: GatePR, Operator: OpGTE, Value: 90, Action: ActionBlock},
	{Metric: MetricScopeAdherence, Gate: GateMerge, Operator: OpEQ, Value: 100, Action: ActionBlock},
}

// GoldenTag is the tag gating which canonical tasks a given gate requires.
type GoldenTag string

const (
	TagSmoke      GoldenTag = "GT-SMOKE"
	TagCritical   GoldenTag = "GT-CRITICAL"
	TagRelease    GoldenTag = "GT-RELEASE"
	TagRegression GoldenTag = "GT-REGRESSION"
	TagOptional   GoldenTag = "GT-OPTIONAL"
)

// RequiredTag maps each gate to the canonical task tag it requires.
var RequiredTag = map[Gate]GoldenTag{
	GatePR:      TagSmoke,
	GateMerge:   TagCritical,
	GateRelease: TagRelease,
	GateMonitor: TagOptional,
}

// TaskResult is the outcome of a single canonical task run.
type TaskResult string

const (
	TaskPass  TaskResult = "pass"
	TaskFail  TaskResult = "fail"
	TaskSkip  TaskResult = "skip"
	TaskError TaskResult = "error"
)

// TaskRunResult is one canonical task's execution outcome.
type TaskRunResult struct {
	ItemID string
	Result TaskResult
}

// Result is the overall pass/warn/fail verdict of a gate evaluation.
type Result string

const (
	ResultPass Result = "pass"
	ResultWarn Result = "warn"
	ResultFail Result = "fail"
)

// CheckResult records one threshold's evaluation.
type CheckResult struct {
	Threshold    Threshold
	ActualValue  float64
	Passed       bool
	ActionTaken  Action
}

// Report is the full output of a gate evaluation.
type Report struct {
	Gate              Gate
	Overall           Result
	CheckResults      []CheckResult
	GoldenTaskResults []TaskRunResult
	Timestamp         time.Time
}

// Engine evaluates gates against supplied thresholds.
type Engine struct {
	thresholds []Threshold
}

// NewEngine creates an Engine. A nil/empty thresholds slice selects
// DefaultThresholds.
func NewEngine(thresholds []Threshold) *Engine {
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds
	}
	return &Engine{thresholds: thresholds}
}

// ThresholdsForGate returns the thresholds bound to gate.
func (e *Engine) ThresholdsForGate(g Gate) []Threshold {
	var out []Threshold
	for _, t := range e.thresholds {
		if t.Gate == g {
			out = append(out, t)
		}
	}
	return out
}

// Evaluate runs the gate's threshold checks against metricValues and,
// if taskResults is non-nil, folds in canonical-task gating, per the
// three-step algorithm
func (e *Engine) Evaluate(g Gate, metricValues map[Metric]float64, taskResults []TaskRunResult) Report {
	report := Report{Gate: g, Overall: ResultPass, Timestamp: time.Now()}

	for _, th := range e.ThresholdsForGate(g) {
		actual := metricValues[th.Metric]
		passed := th.check(actual)
		report.CheckResults = append(report.CheckResults, CheckResult{
			Threshold: th, ActualValue: actual, Passed: passed, ActionTaken: th.Action,
		})
		if !passed {
			switch th.Action {
			case ActionBlock:
				report.Overall = ResultFail
			case ActionWarn:
				if report.Overall != ResultFail {
					report.Overall = ResultWarn
				}
			}
		}
	}

	if taskResults != nil {
		report.GoldenTaskResults = append([]TaskRunResult(nil), taskResults...)
		if (g == GateMerge || g == GateRelease) && hasNonPassingTask(taskResults) {
			report.Overall = ResultFail
		}
	}

	return report
}

func hasNonPassingTask(results []TaskRunResult) bool {
	for _, r := range results {
		if r.Result != TaskPass && r.Result != TaskSkip {
			return true
		}
	}
	return false
}
