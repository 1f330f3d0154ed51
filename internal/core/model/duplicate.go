package model

// AutomationLevel controls how aggressively merges are suggested.
type AutomationLevel string

const (
	AutomationLow    AutomationLevel = "low"
	AutomationMedium AutomationLevel = "medium"
	AutomationHigh   AutomationLevel = "high"
)

type DuplicateCheckRequest struct {
	Record1         string          `json:"record1" validate:"required,notblank"`
	Record2         string          `json:"record2" validate:"required,notblank"`
	AutomationLevel AutomationLevel `json:"automationLevel" validate:"required,oneof=low medium high"`
}

type DuplicateCheckResult struct {
	AreDuplicates   bool    `json:"areDuplicates"`
	ConfidenceScore float64 `json:"confidenceScore"` // 0-1
	SuggestedAction string  `json:"suggestedAction"`
}
