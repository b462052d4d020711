// Package services contains application services for the Eye Glaze client.
// This file defines the analysis service: the upload–predict–submit pipeline
// and the read-side operations over analysis history and statistics.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/api"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/repositories/analyses"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/repositories/metadata"
	"github.com/eyeglaze/eyeglaze-cli/internal/dbx"
	"github.com/eyeglaze/eyeglaze-cli/internal/logging"
)

// latestUploadKey is the transient storage key bridging the upload step and
// the analysis submission within a single user action.
const latestUploadKey = "latestUploadResult"

// defaultSubjectAge is assumed when the session has no age on record; the
// ML service selects its stress threshold by age group.
const defaultSubjectAge = 30

// ErrNotAnImage means the selected file's content is not an image.
var ErrNotAnImage = errors.New("not an image file")

// AnalysisOutcome is the result of one full analysis action.
type AnalysisOutcome struct {
	Prediction *models.Prediction
	HasStress  bool
	ImageURL   string
	Submitted  bool
}

// AnalysisService runs the analysis pipeline against the backend and the ML
// service and maintains the local analysis cache.
type AnalysisService struct {
	backend api.Backend
	ml      api.Predictor
	db      *sql.DB
	log     logging.Logger
}

func NewAnalysisService(backend api.Backend, ml api.Predictor, db *sql.DB, log logging.Logger) *AnalysisService {
	return &AnalysisService{backend: backend, ml: ml, db: db, log: log}
}

func (s *AnalysisService) metadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *AnalysisService) cacheRepo(db dbx.DBTX) analyses.Repository {
	return analyses.NewSQLiteRepository(db)
}

// Analyze performs one analysis action for the given user: validate that the
// file really is an image, upload it to the backend, run the ML prediction,
// and submit the verdict. The stress verdict is taken from the ML response's
// stress_detected field; the submission confidence is the raw probability.
//
// Submission is a background step: its failure is logged and reflected in
// Outcome.Submitted but does not fail the analysis.
func (s *AnalysisService) Analyze(ctx context.Context, user *models.User, imagePath string) (*AnalysisOutcome, error) {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if mt := mimetype.Detect(image); !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotAnImage, mt.String())
	}

	filename := filepath.Base(imagePath)

	upload, err := s.backend.UploadEyeImage(ctx, user.Email, filename, image)
	if err != nil {
		return nil, err
	}
	s.stashUploadResult(ctx, upload)

	age := user.Age
	if age == 0 {
		age = defaultSubjectAge
	}

	pred, err := s.ml.Predict(ctx, image, filename, age)
	if err != nil {
		return nil, err
	}

	outcome := &AnalysisOutcome{
		Prediction: pred,
		HasStress:  pred.Result.StressDetected,
		ImageURL:   upload.ImageURL,
	}

	sub := models.AnalysisSubmission{
		Username:        user.Email,
		HasStress:       outcome.HasStress,
		ImageURL:        upload.ImageURL,
		ConfidenceLevel: pred.Result.StressProbability,
	}
	if err := s.backend.SubmitAnalysis(ctx, sub); err != nil {
		s.log.Warn(ctx, "analysis submission failed", "user", user.Email, "error", err)
	} else {
		outcome.Submitted = true
	}

	s.cacheOutcome(ctx, user.Email, outcome)
	return outcome, nil
}

// stashUploadResult keeps the upload response under the transient key so the
// record that bridged upload and submission survives for inspection. Failure
// to stash never affects the pipeline.
func (s *AnalysisService) stashUploadResult(ctx context.Context, upload *models.UploadResult) {
	raw, err := json.Marshal(upload)
	if err != nil {
		return
	}
	if err := s.metadataRepo().Set(ctx, latestUploadKey, raw); err != nil {
		s.log.Warn(ctx, "failed to stash upload result", "error", err)
	}
}

func (s *AnalysisService) cacheOutcome(ctx context.Context, username string, outcome *AnalysisOutcome) {
	confidence := outcome.Prediction.Result.StressProbability
	record := &models.Analysis{
		ID:              uuid.NewString(),
		Username:        username,
		HasStress:       outcome.HasStress,
		ImageURL:        outcome.ImageURL,
		ConfidenceLevel: &confidence,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.cacheRepo(s.db).Upsert(ctx, record); err != nil {
		s.log.Warn(ctx, "failed to cache analysis", "error", err)
	}
}

// History fetches the user's analysis history. On success the local cache is
// refreshed with the fetched rows; when the backend is unreachable, the last
// cached rows are served instead. The second return value reports whether
// the result came from the cache.
func (s *AnalysisService) History(ctx context.Context, username string) ([]models.Analysis, bool, error) {
	items, err := s.backend.UserAnalyses(ctx, username)
	if err != nil {
		if errors.Is(err, api.ErrNetwork) {
			cached, cerr := s.cacheRepo(s.db).ListByUser(ctx, username)
			if cerr == nil && len(cached) > 0 {
				s.log.Info(ctx, "backend unreachable, serving cached history", "user", username)
				return cached, true, nil
			}
		}
		return nil, false, err
	}

	s.refreshCache(ctx, username, items)
	return items, false, nil
}

func (s *AnalysisService) refreshCache(ctx context.Context, username string, items []models.Analysis) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.cacheRepo(tx)
		if err := repo.DeleteByUser(ctx, username); err != nil {
			return err
		}
		for i := range items {
			if err := repo.Upsert(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Warn(ctx, "failed to refresh analysis cache", "user", username, "error", err)
	}
}

// Latest returns the user's most recent analysis.
func (s *AnalysisService) Latest(ctx context.Context, username string) (*models.Analysis, error) {
	return s.backend.LatestAnalysis(ctx, username)
}

// Count returns the user's aggregate analysis counter.
func (s *AnalysisService) Count(ctx context.Context, username string) (*models.AnalysisCount, error) {
	return s.backend.AnalysisCount(ctx, username)
}

// LatestImage returns the user's most recent uploaded eye image.
func (s *AnalysisService) LatestImage(ctx context.Context, username string) (*models.EyeImage, error) {
	return s.backend.LatestEyeImage(ctx, username)
}

// Recommendations returns the advice block, optionally forcing regeneration.
func (s *AnalysisService) Recommendations(ctx context.Context, username string, generate bool) (*models.RecommendationReport, error) {
	return s.backend.Recommendations(ctx, username, generate)
}

// Summary returns the aggregated health summary with weekly trends.
func (s *AnalysisService) Summary(ctx context.Context, username string) (*models.HealthSummary, error) {
	return s.backend.HealthSummary(ctx, username)
}
