// Package recommend derives the readiness category, sales recommendations,
// and decision-maker targets from a scored analysis.
package recommend

// Categorize maps a 0-100 score onto a label using ascending thresholds.
// len(categories) must equal len(thresholds)+1; config validation enforces
// that at startup.
func Categorize(score float64, thresholds []float64, categories []string) string {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if score >= thresholds[i] {
			return categories[i+1]
		}
	}
	return categories[0]
}
