package dedupe

import "github.com/agenthands/mdm/internal/core/model"

const (
	ActionManualReview   = "manual review"
	ActionMerge          = "merge"
	ActionAutomaticMerge = "automatic merge"
)

// Confidence must be strictly above the threshold to suggest a merge.
var mergeThresholds = map[model.AutomationLevel]float64{
	model.AutomationMedium: 0.7,
	model.AutomationHigh:   0.9,
}

// SuggestAction applies the automation-level policy deterministically. Low
// always asks for review; unknown levels behave like low.
func SuggestAction(level model.AutomationLevel, areDuplicates bool, confidence float64) string {
	threshold, ok := mergeThresholds[level]
	if !ok || !areDuplicates || confidence <= threshold {
		return ActionManualReview
	}
	if level == model.AutomationHigh {
		return ActionAutomaticMerge
	}
	return ActionMerge
}
