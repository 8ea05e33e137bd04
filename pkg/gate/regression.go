package gate

import "time"

// Indicator is one of the five fixed regression indicators.
type Indicator string

const (
	IndicatorTaskNowFails      Indicator = "RI-01"
	IndicatorMetricBreach      Indicator = "RI-02"
	IndicatorNewFailureCategory Indicator = "RI-03"
	IndicatorTimeToGreenUp     Indicator = "RI-04"
	IndicatorFlakyBecameStable Indicator = "RI-05"
)

// RegressionSeverity mirrors the four-severity scale used for failures.
type RegressionSeverity string

const (
	RegressionLow      RegressionSeverity = "low"
	RegressionMedium   RegressionSeverity = "medium"
	RegressionHigh     RegressionSeverity = "high"
	RegressionCritical RegressionSeverity = "critical"
)

var indicatorSeverity = map[Indicator]RegressionSeverity{
	IndicatorTaskNowFails:       RegressionHigh,
	IndicatorMetricBreach:       RegressionMedium,
	IndicatorNewFailureCategory: RegressionMedium,
	IndicatorTimeToGreenUp:      RegressionLow,
	IndicatorFlakyBecameStable:  RegressionHigh,
}

// timeToGreenIncreaseFactor is the "more than 1.5x" threshold for RI-04.
const timeToGreenIncreaseFactor = 1.5

// Regression is one detected regression against a baseline.
type Regression struct {
	Indicator      Indicator
	Description    string
	Severity       RegressionSeverity
	Metric         Metric
	PreviousValue  float64
	CurrentValue   float64
	ThresholdValue float64
	AffectedTasks  []string
	DetectedAt     time.Time
}

// Baseline is a prior metrics + task-result snapshot to compare against.
type Baseline struct {
	Metrics     map[Metric]float64
	TaskResults []TaskRunResult
}

// metricDirection tells the detector which side of a threshold counts as
// "regressed" for a metric
// semantics: M-01/M-05 regress dropping below threshold; M-03 regresses
// rising above it.
func regressedBelow(m Metric) bool {
	return m == MetricSuccessRate || m == MetricScopeAdherence
}

// Detector finds regressions between a baseline and current results.
type Detector struct{}

// Detect runs all applicable regression indicators.
func (Detector) Detect(baseline Baseline, currentMetrics map[Metric]float64, currentResults []TaskRunResult, thresholds map[Metric]float64) []Regression {
	var out []Regression
	out = append(out, detectTaskRegressions(baseline.TaskResults, currentResults)...)
	if thresholds != nil {
		out = append(out, detectThresholdBreaches(baseline.Metrics, currentMetrics, thresholds)...)
	}
	out = append(out, detectTimeToGreenIncrease(baseline.Metrics, currentMetrics)...)
	return out
}

func detectTaskRegressions(baseline, current []TaskRunResult) []Regression {
	byID := make(map[string]TaskRunResult, len(baseline))
	for _, r := range baseline {
		byID[r.ItemID] = r
	}
	var out []Regression
	for _, cur := range current {
		prev, ok := byID[cur.ItemID]
		if !ok {
			continue
		}
		if prev.Result == TaskPass && cur.Result == TaskFail {
			out = append(out, Regression{
				Indicator:     IndicatorTaskNowFails,
				Description:   "task " + cur.ItemID + " previously passed but now fails",
				Severity:      indicatorSeverity[IndicatorTaskNowFails],
				AffectedTasks: []string{cur.ItemID},
				DetectedAt:    time.Now(),
			})
		}
	}
	return out
}

func detectThresholdBreaches(baselineMetrics, currentMetrics map[Metric]float64, thresholds map[Metric]float64) []Regression {
	var out []Regression
	for metric, threshold := range thresholds {
		prev, okPrev := baselineMetrics[metric]
		cur, okCur := currentMetrics[metric]
		if !okPrev || !okCur {
			continue
		}
		if regressedBelow(metric) {
			if prev >= threshold && cur < threshold {
				out = append(out, Regression{
					Indicator: IndicatorMetricBreach, Description: string(metric) + " dropped below threshold",
					Severity: indicatorSeverity[IndicatorMetricBreach], Metric: metric,
					PreviousValue: prev, CurrentValue: cur, ThresholdValue: threshold, DetectedAt: time.Now(),
				})
			}
		} else {
			if prev <= threshold && cur > threshold {
				out = append(out, Regression{
					Indicator: IndicatorMetricBreach, Description: string(metric) + " rose above threshold",
					Severity: indicatorSeverity[IndicatorMetricBreach], Metric: metric,
					PreviousValue: prev, CurrentValue: cur, ThresholdValue: threshold, DetectedAt: time.Now(),
				})
			}
		}
	}
	return out
}

func detectTimeToGreenIncrease(baselineMetrics, currentMetrics map[Metric]float64) []Regression {
	prev, okPrev := baselineMetrics[MetricTimeToGreen]
	cur, okCur := currentMetrics[MetricTimeToGreen]
	if !okPrev || !okCur || prev <= 0 {
		return nil
	}
	if cur > prev*timeToGreenIncreaseFactor {
		return []Regression{{
			Indicator: IndicatorTimeToGreenUp, Description: "time-to-green increased more than 1.5x",
			Severity: indicatorSeverity[IndicatorTimeToGreenUp], Metric: MetricTimeToGreen,
			PreviousValue: prev, CurrentValue: cur, DetectedAt: time.Now(),
		}}
	}
	return nil
}
