package models

// Prediction is the full response of the ML service's /predict endpoint.
// The stress verdict authoritative for this client is
// Prediction.Result.StressDetected; the coarse label in Result.StressLevel
// is informational only.
type Prediction struct {
	Success       bool           `json:"success"`
	Error         string         `json:"error,omitempty"`
	Message       string         `json:"message,omitempty"`
	Result        StressVerdict  `json:"prediction"`
	PupilAnalysis *PupilAnalysis `json:"pupil_analysis,omitempty"`
	IrisAnalysis  *IrisAnalysis  `json:"iris_analysis,omitempty"`
	SubjectInfo   *SubjectInfo   `json:"subject_info,omitempty"`
	DetectionInfo *DetectionInfo `json:"detection_info,omitempty"`
	Measurements  *Measurements  `json:"measurements,omitempty"`
}

// StressVerdict carries the ML service's stress determination.
type StressVerdict struct {
	StressDetected    bool    `json:"stress_detected"`
	StressProbability float64 `json:"stress_probability"`
	StressLevel       string  `json:"stress_level"`
	StressPercentage  float64 `json:"stress_percentage"`
	Confidence        string  `json:"confidence,omitempty"`
	NeedsBetterImage  bool    `json:"needs_better_image"`
}

// PupilAnalysis reports pupil measurements against the age-adjusted threshold.
type PupilAnalysis struct {
	DiameterMM      float64 `json:"diameter_mm"`
	StressThreshold float64 `json:"stress_threshold"`
	IsDilated       bool    `json:"is_dilated"`
	Status          string  `json:"status"`
}

// IrisAnalysis reports tension-ring detection on the iris.
type IrisAnalysis struct {
	TensionRingsCount int    `json:"tension_rings_count"`
	HasStressRings    bool   `json:"has_stress_rings"`
	Interpretation    string `json:"interpretation"`
}

// SubjectInfo echoes the subject parameters the prediction was made with.
type SubjectInfo struct {
	Age      int    `json:"age"`
	AgeGroup string `json:"age_group"`
}

// DetectionInfo describes how the eye features were located in the image.
type DetectionInfo struct {
	PupilDetected   bool   `json:"pupil_detected"`
	IrisDetected    bool   `json:"iris_detected"`
	ImageType       string `json:"image_type"`
	DetectionMethod string `json:"detection_method"`
}

// Measurements carries the raw values the verdict was derived from.
type Measurements struct {
	PupilDiameterMM  float64 `json:"pupil_diameter_mm"`
	RingCount        int     `json:"ring_count"`
	Validation       string  `json:"validation"`
	ConversionFactor float64 `json:"conversion_factor"`
}
