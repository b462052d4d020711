// Package api implements the HTTP clients for the Eye Glaze backend and the
// external ML prediction service. Response envelopes are decoded once at this
// boundary; callers receive typed payloads or sentinel errors.
package api

import (
	"context"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
)

// LoginData is the auth payload returned by the login endpoint.
// The backend identifies the record with "_id" here but "id" on register.
type LoginData struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Age       *int   `json:"age,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// RegisterData is the auth payload returned by the register endpoint.
type RegisterData struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// Backend defines the operations of the Eye Glaze REST API consumed by
// this client.
//
// All methods honor context cancellation. Mutating calls issue exactly one
// request; read calls may retry transient transport failures.
type Backend interface {
	Login(ctx context.Context, username, password string) (*LoginData, error)
	Register(ctx context.Context, username, password, birthDate string) (*RegisterData, error)

	LatestAnalysis(ctx context.Context, username string) (*models.Analysis, error)
	UserAnalyses(ctx context.Context, username string) ([]models.Analysis, error)
	AnalysisCount(ctx context.Context, username string) (*models.AnalysisCount, error)
	SubmitAnalysis(ctx context.Context, sub models.AnalysisSubmission) error

	UploadEyeImage(ctx context.Context, username, filename string, image []byte) (*models.UploadResult, error)
	LatestEyeImage(ctx context.Context, username string) (*models.EyeImage, error)

	Recommendations(ctx context.Context, username string, generate bool) (*models.RecommendationReport, error)
	HealthSummary(ctx context.Context, username string) (*models.HealthSummary, error)
}

// Predictor defines the ML prediction service boundary.
type Predictor interface {
	Predict(ctx context.Context, image []byte, filename string, age int) (*models.Prediction, error)
}
