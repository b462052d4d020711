package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// statusSuccess is the only envelope status the backend uses for a good
// response; anything else is treated uniformly as a failure.
const statusSuccess = "success"

// envelope is the {status, message, data} wrapper every backend JSON
// response uses. It is decoded exactly once, here; downstream code only
// ever sees the typed Data or an error.
type envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    T      `json:"data"`
}

// decodeEnvelope reads the response body, unmarshals the envelope, and
// returns the typed payload. A non-2xx HTTP status or a status field other
// than "success" yields failErr, wrapped with the backend-supplied message
// when one is present. Closing the body is the caller's responsibility.
func decodeEnvelope[T any](resp *http.Response, failErr error) (T, error) {
	var zero T

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("%w: reading response body: %v", ErrNetwork, err)
	}

	var env envelope[T]
	if jsonErr := json.Unmarshal(body, &env); jsonErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return zero, fmt.Errorf("%w: %s", failErr, resp.Status)
		}
		return zero, fmt.Errorf("%w: malformed response body: %v", ErrNetwork, jsonErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || env.Status != statusSuccess {
		if msg := backendMessage(env.Message, env.Error); msg != "" {
			return zero, fmt.Errorf("%w: %s", failErr, msg)
		}
		return zero, fmt.Errorf("%w: status %d", failErr, resp.StatusCode)
	}

	return env.Data, nil
}

func backendMessage(message, errText string) string {
	if message != "" {
		return message
	}
	return errText
}
