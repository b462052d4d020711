package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newMLClient(t *testing.T, handler http.HandlerFunc) *MLClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewMLClient(srv.URL, 5*time.Second, testLogger())
}

func TestPredict_Success(t *testing.T) {
	c := newMLClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "30", r.FormValue("age"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "eye.jpg", header.Filename)

		io.WriteString(w, `{
			"success": true,
			"prediction": {
				"stress_detected": true,
				"stress_probability": 0.87,
				"stress_level": "STRESS",
				"stress_percentage": 87,
				"needs_better_image": false
			},
			"pupil_analysis": {"diameter_mm": 4.1, "stress_threshold": 4.0, "is_dilated": true, "status": "Dilated"},
			"iris_analysis": {"tension_rings_count": 2, "has_stress_rings": true, "interpretation": "2 tension ring(s) detected"},
			"subject_info": {"age": 30, "age_group": "Below 60 years"},
			"detection_info": {"pupil_detected": true, "iris_detected": true, "image_type": "color", "detection_method": "ml_classifier"},
			"measurements": {"pupil_diameter_mm": 4.1, "ring_count": 2, "validation": "Random Forest Classifier", "conversion_factor": 0.05}
		}`)
	})

	p, err := c.Predict(context.Background(), []byte("jpgbytes"), "eye.jpg", 30)
	require.NoError(t, err)
	require.True(t, p.Result.StressDetected)
	require.InEpsilon(t, 0.87, p.Result.StressProbability, 1e-9)
	require.Equal(t, "STRESS", p.Result.StressLevel)
	require.NotNil(t, p.PupilAnalysis)
	require.True(t, p.PupilAnalysis.IsDilated)
	require.Equal(t, 2, p.IrisAnalysis.TensionRingsCount)
	require.Equal(t, 30, p.SubjectInfo.Age)
	require.True(t, p.DetectionInfo.PupilDetected)
	require.Equal(t, 2, p.Measurements.RingCount)
}

func TestPredict_ServiceFailure(t *testing.T) {
	c := newMLClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"success": false, "error": "Processing failed", "message": "no eye detected"}`)
	})

	_, err := c.Predict(context.Background(), []byte("x"), "eye.jpg", 30)
	require.ErrorIs(t, err, ErrDataUnavailable)
	require.Contains(t, err.Error(), "Processing failed")
}

func TestPredict_SuccessFlagFalseOn200(t *testing.T) {
	c := newMLClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success": false, "error": "image too small"}`)
	})

	_, err := c.Predict(context.Background(), []byte("x"), "eye.jpg", 30)
	require.ErrorIs(t, err, ErrDataUnavailable)
}

func TestPredict_MalformedBody(t *testing.T) {
	c := newMLClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<!doctype html>`)
	})

	_, err := c.Predict(context.Background(), []byte("x"), "eye.jpg", 30)
	require.ErrorIs(t, err, ErrNetwork)
}
