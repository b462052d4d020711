package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
	"github.com/eyeglaze/eyeglaze-cli/internal/logging"
)

// MLClient talks to the external prediction service. Unlike the backend,
// the service does not use the {status, message, data} envelope; it returns
// a flat document with a "success" flag.
type MLClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

func NewMLClient(baseURL string, timeout time.Duration, log logging.Logger) *MLClient {
	return &MLClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Predict submits the image and the subject's age and returns the parsed
// prediction. An unsuccessful prediction (success=false) is reported as
// ErrDataUnavailable carrying the service's error text.
func (c *MLClient) Predict(ctx context.Context, image []byte, filename string, age int) (*models.Prediction, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("create image part: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("write image part: %w", err)
	}
	if err := mw.WriteField("age", strconv.Itoa(age)); err != nil {
		return nil, fmt.Errorf("write age field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.log.Debug(ctx, "prediction request", "filename", filename, "age", age)
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrNetwork, err)
	}

	var p models.Prediction
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: malformed prediction body: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !p.Success {
		msg := backendMessage(p.Error, p.Message)
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, msg)
	}

	return &p, nil
}
