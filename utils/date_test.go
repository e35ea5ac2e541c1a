package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		day        time.Time
		wantMonday string
		wantSunday string
	}{
		{"wednesday", time.Date(2024, 1, 17, 15, 0, 0, 0, time.UTC), "2024-01-15", "2024-01-21"},
		{"monday", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "2024-01-15", "2024-01-21"},
		{"sunday belongs to the prior monday", time.Date(2024, 1, 21, 23, 0, 0, 0, time.UTC), "2024-01-15", "2024-01-21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.day)
			assert.Equal(t, tt.wantMonday, monday)
			assert.Equal(t, tt.wantSunday, sunday)
		})
	}
}

func TestPreviousWeekRange(t *testing.T) {
	monday, sunday := PreviousWeekRange(time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-01-08", monday)
	assert.Equal(t, "2024-01-14", sunday)
}
