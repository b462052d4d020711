package models

// Analysis is a stored stress-analysis record as returned by the backend.
type Analysis struct {
	ID              string   `json:"_id"`
	Username        string   `json:"username"`
	HasStress       bool     `json:"hasStress"`
	ImageURL        string   `json:"imageUrl"`
	ConfidenceLevel *float64 `json:"confidenceLevel,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}

// AnalysisCount is the aggregate analysis counter for a user.
type AnalysisCount struct {
	Username      string `json:"username"`
	TotalAnalyses int    `json:"totalAnalyses"`
}

// AnalysisSubmission is the payload sent to record a completed analysis.
type AnalysisSubmission struct {
	Username        string  `json:"username"`
	HasStress       bool    `json:"hasStress"`
	ImageURL        string  `json:"imageUrl"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
}

// UploadResult is the backend's answer to an eye-image upload. The record is
// kept around between the upload step and the analysis submission step.
type UploadResult struct {
	ImageURL     string `json:"imageUrl"`
	CloudinaryID string `json:"cloudinaryId,omitempty"`
}

// EyeImage is a stored upload as returned by the latest-image endpoint.
type EyeImage struct {
	ID           string `json:"_id"`
	Username     string `json:"username"`
	ImageURL     string `json:"imageUrl"`
	CloudinaryID string `json:"cloudinaryId"`
	UploadedAt   string `json:"uploadedAt"`
}
