package formatter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDaysAgo(t *testing.T) {
	today := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"today", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "today"},
		{"yesterday", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), "yesterday"},
		{"days", time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), "3d ago"},
		{"weeks", time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC), "3w ago"},
		{"months", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), "3mo ago"},
		{"future", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), "2024-03-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysAgo(tt.date, today))
		})
	}
}

func TestValueHelpers(t *testing.T) {
	assert.Equal(t, "52.5 kg", Weight(decimal.RequireFromString("52.50")))
	assert.Equal(t, "10/10/11", Reps([]int{10, 10, 11}))
	assert.Equal(t, "", Reps(nil))
	assert.Equal(t, "–", RPE(0))
	assert.Equal(t, "9.5", RPE(9.5))
	assert.Equal(t, "8", RPE(8))
	assert.Equal(t, "6-10", RepRange(6, 10))
	assert.Equal(t, "felt…", Truncate("felt heavy", 5))
	assert.Equal(t, "ok", Truncate("ok", 5))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("rest", "content here")
	assert.Contains(t, result, "REST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")

	alert := RenderAlert("", "just content")
	assert.Contains(t, alert, "just content")
	assert.Contains(t, alert, "╭")
}
