package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with separate value",
			args:    []string{"-b", "http://x", "-unknown", "v"},
			allowed: []string{"-b"},
			want:    []string{"-b", "http://x"},
		},
		{
			name:    "keeps allowed flag with equals value",
			args:    []string{"-b=http://x", "-z=1"},
			allowed: []string{"-b"},
			want:    []string{"-b=http://x"},
		},
		{
			name:    "drops unknown flags entirely",
			args:    []string{"-test.v", "-test.run=TestX"},
			allowed: []string{"-b", "-t"},
			want:    []string{},
		},
		{
			name:    "boolean-style allowed flag without value",
			args:    []string{"-t", "-b", "http://x"},
			allowed: []string{"-t", "-b"},
			want:    []string{"-t", "-b", "http://x"},
		},
		{
			name:    "empty input",
			args:    []string{},
			allowed: []string{"-b"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
