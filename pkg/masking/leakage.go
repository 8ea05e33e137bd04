package masking

import "strings"

// LeakageDetector checks tool output for configured leakage markers —
// sentinel strings planted in protected material whose appearance in a
// tool result means the agent surfaced content it should not have.
// The reasoning loop terminates the execution when a marker is seen.
type LeakageDetector struct {
	markers []string
}

// NewLeakageDetector creates a detector for the given markers. Empty
// markers are dropped.
func NewLeakageDetector(markers []string) *LeakageDetector {
	kept := make([]string, 0, len(markers))
	for _, m := range markers {
		if m != "" {
			kept = append(kept, m)
		}
	}
	return &LeakageDetector{markers: kept}
}

// Detect reports whether content contains any configured marker, and
// which one matched first.
func (d *LeakageDetector) Detect(content string) (string, bool) {
	for _, m := range d.markers {
		if strings.Contains(content, m) {
			return m, true
		}
	}
	return "", false
}
