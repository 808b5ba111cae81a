package entity

type Category string

const (
	CategoryPasswordReset Category = "Password Reset"
	CategoryVPNIssues     Category = "VPN Issues"
	CategorySoftwareInst  Category = "Software Installation"
	CategoryHardwareIssue Category = "Hardware Issues"
	CategoryNetworkIssues Category = "Network Issues"
	CategoryEmailIssues   Category = "Email Issues"
	CategoryOther         Category = "Other"
)

// Categories lists the supervised labels in their canonical order.
// The order is load-bearing: keyword score ties resolve to the first
// category enumerated here. Other is the fallback sink and is never
// trained or keyword-scored.
func Categories() []Category {
	return []Category{
		CategoryPasswordReset,
		CategoryVPNIssues,
		CategorySoftwareInst,
		CategoryHardwareIssue,
		CategoryNetworkIssues,
		CategoryEmailIssues,
	}
}

func IsValidCategory(value string) bool {
	for _, category := range Categories() {
		if string(category) == value {
			return true
		}
	}
	return value == string(CategoryOther)
}

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type KeywordMatch struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

type LabelConfidence struct {
	Label      Category `json:"label"`
	Confidence int      `json:"confidence"`
}

// ClassificationResult is produced fresh per call and never persisted.
type ClassificationResult struct {
	Category       Category          `json:"category"`
	Priority       Priority          `json:"priority"`
	Confidence     int               `json:"confidence"`
	AssignedTeam   string            `json:"assigned_team"`
	Method         string            `json:"method"`
	MLConfidence   int               `json:"ml_confidence"`
	KeywordScore   float64           `json:"keyword_score"`
	KeywordMatches []KeywordMatch    `json:"keyword_matches"`
	TopPredictions []LabelConfidence `json:"top_predictions"`
}
