package models

// RecommendationStats summarizes recent analysis activity used to ground
// the recommendation text.
type RecommendationStats struct {
	TotalAnalysesLastWeek int     `json:"totalAnalysesLastWeek"`
	StressDetectedCount   int     `json:"stressDetectedCount"`
	StressPercentage      float64 `json:"stressPercentage"`
}

// Recommendations is the canned advice block produced by the backend.
type Recommendations struct {
	Assessment           string   `json:"assessment"`
	Recommendations      []string `json:"recommendations"`
	LifestyleAdjustments []string `json:"lifestyleAdjustments"`
}

// RecommendationReport bundles the advice with its supporting stats.
type RecommendationReport struct {
	Stats           *RecommendationStats `json:"stats,omitempty"`
	Recommendations Recommendations      `json:"recommendations"`
}

// HealthSummary aggregates per-user analysis activity.
type HealthSummary struct {
	Summary      SummaryTotals `json:"summary"`
	WeeklyTrends []WeeklyTrend `json:"weeklyTrends"`
}

type SummaryTotals struct {
	TotalAnalyses       int     `json:"totalAnalyses"`
	StressDetectedCount int     `json:"stressDetectedCount"`
	StressPercentage    float64 `json:"stressPercentage"`
	LatestStatus        string  `json:"latestStatus"`
	LatestAnalysisTime  string  `json:"latestAnalysisTime"`
}

type WeeklyTrend struct {
	Week        string  `json:"week"`
	Total       int     `json:"total"`
	StressCount int     `json:"stressDetected"`
	Percentage  float64 `json:"percentage"`
}
