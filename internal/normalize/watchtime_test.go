package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWatchTime(t *testing.T) {
	tests := []struct {
		name      string
		watchTime string
		want      int
	}{
		{"hours and minutes", "1h 54m", 114},
		{"minutes only", "45m", 45},
		{"hours only", "2h", 120},
		{"long movie", "2h 50m", 170},
		{"empty string", "", 0},
		{"no duration markers", "1080p WEB-DL", 0},
		{"zero minutes", "0m", 0},
		{"markers embedded in text", "runtime 3h 5m approx", 185},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseWatchTime(tt.watchTime))
		})
	}
}
