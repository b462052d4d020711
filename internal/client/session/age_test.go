package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompletedYears(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  int
	}{
		{"day before birthday", date(2000, 6, 15), date(2024, 6, 14), 23},
		{"on the birthday", date(2000, 6, 15), date(2024, 6, 15), 24},
		{"day after birthday", date(2000, 6, 15), date(2024, 6, 16), 24},
		{"earlier month", date(2000, 6, 15), date(2024, 3, 1), 23},
		{"later month", date(2000, 6, 15), date(2024, 12, 1), 24},
		{"same year", date(2024, 1, 1), date(2024, 6, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, completedYears(tt.birth, tt.now))
		})
	}
}
