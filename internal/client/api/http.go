package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
	"github.com/eyeglaze/eyeglaze-cli/internal/logging"
)

const (
	getRetryAttempts = 3
	getRetryBase     = 200 * time.Millisecond
)

// HTTPBackend is the Backend implementation over net/http.
type HTTPBackend struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

func NewHTTPBackend(baseURL string, timeout time.Duration, log logging.Logger) *HTTPBackend {
	return &HTTPBackend{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// postJSON issues a single POST with a JSON body. Mutating endpoints are not
// retried so that each operation produces exactly one request.
func (b *HTTPBackend) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	b.log.Debug(ctx, "backend request", "method", http.MethodPost, "path", path)
	resp, err := b.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, nil
}

// get issues a GET, retrying transport-level failures with exponential
// backoff. A response that arrives, whatever its status code, is returned
// to the caller for envelope decoding.
func (b *HTTPBackend) get(ctx context.Context, path string) (*http.Response, error) {
	var resp *http.Response

	backoff := retry.WithMaxRetries(getRetryAttempts, retry.NewExponential(getRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
		if err != nil {
			return err
		}
		r, err := b.hc.Do(req)
		if err != nil {
			b.log.Debug(ctx, "backend request failed, retrying", "path", path, "error", err)
			return retry.RetryableError(err)
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, nil
}

func (b *HTTPBackend) Login(ctx context.Context, username, password string) (*LoginData, error) {
	resp, err := b.postJSON(ctx, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope[LoginData](resp, ErrAuthentication)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (b *HTTPBackend) Register(ctx context.Context, username, password, birthDate string) (*RegisterData, error) {
	resp, err := b.postJSON(ctx, "/api/auth/register", map[string]string{
		"username":  username,
		"password":  password,
		"birthDate": birthDate,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope[RegisterData](resp, ErrRegistration)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (b *HTTPBackend) LatestAnalysis(ctx context.Context, username string) (*models.Analysis, error) {
	resp, err := b.get(ctx, "/api/analysis/latest/"+url.PathEscape(username))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope[models.Analysis](resp, ErrDataUnavailable)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (b *HTTPBackend) UserAnalyses(ctx context.Context, username string) ([]models.Analysis, error) {
	resp, err := b.get(ctx, "/api/analysis/user/"+url.PathEscape(username))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeEnvelope[[]models.Analysis](resp, ErrDataUnavailable)
}

func (b *HTTPBackend) AnalysisCount(ctx context.Context, username string) (*models.AnalysisCount, error) {
	resp, err := b.get(ctx, "/api/analysis/count/"+url.PathEscape(username))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope[models.AnalysisCount](resp, ErrDataUnavailable)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (b *HTTPBackend) SubmitAnalysis(ctx context.Context, sub models.AnalysisSubmission) error {
	resp, err := b.postJSON(ctx, "/api/analysis/submit", sub)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, err = decodeEnvelope[json.RawMessage](resp, ErrDataUnavailable)
	return err
}

func (b *HTTPBackend) UploadEyeImage(ctx context.Context, username, filename string, image []byte) (*models.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("username", username); err != nil {
		return nil, fmt.Errorf("write username field: %w", err)
	}
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("create image part: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("write image part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/upload/eye-image", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := b.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope[models.UploadResult](resp, ErrDataUnavailable)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (b *HTTPBackend) LatestEyeImage(ctx context.Context, username string) (*models.EyeImage, error) {
	resp, err := b.get(ctx, "/api/upload/eye-image/latest/"+url.PathEscape(username))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope[models.EyeImage](resp, ErrDataUnavailable)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (b *HTTPBackend) Recommendations(ctx context.Context, username string, generate bool) (*models.RecommendationReport, error) {
	path := "/api/recommendations/user/" + url.PathEscape(username)
	if generate {
		path += "?generate=true"
	}
	resp, err := b.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope[models.RecommendationReport](resp, ErrDataUnavailable)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (b *HTTPBackend) HealthSummary(ctx context.Context, username string) (*models.HealthSummary, error) {
	resp, err := b.get(ctx, "/api/recommendations/summary/"+url.PathEscape(username))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope[models.HealthSummary](resp, ErrDataUnavailable)
	if err != nil {
		return nil, err
	}
	return &data, nil
}
