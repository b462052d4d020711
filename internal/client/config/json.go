package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/eyeglaze/eyeglaze-cli/internal/flagx"
	"github.com/eyeglaze/eyeglaze-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as a string like "15s"
// or as integer nanoseconds. Parsed values are copied into the runtime
// Config, which uses time.Duration.
type JsonConfig struct {
	BackendBaseURL string         `json:"backend_base_url"`
	MLBaseURL      string         `json:"ml_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabaseFile   string         `json:"database_file"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// If no file is named, nothing happens. Read or unmarshal errors panic;
// a broken config file should stop startup, not be silently skipped.
// Only fields present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.MLBaseURL != "" {
		cfg.MLBaseURL = jc.MLBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
}
