package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		want     int
	}{
		{"no tasks", Progress{}, 0},
		{"zero weight completed", Progress{TotalHours: 0, DoneHours: 0}, 0},
		{"nothing done", Progress{TotalHours: 10, DoneHours: 0}, 0},
		{"learn x", Progress{TotalHours: 10, DoneHours: 6}, 60},
		{"floors", Progress{TotalHours: 3, DoneHours: 2}, 66},
		{"all done", Progress{TotalHours: 7, DoneHours: 7}, 100},
		{"clamped", Progress{TotalHours: 5, DoneHours: 9}, 100},
		{"negative sums", Progress{TotalHours: -4, DoneHours: -1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.progress.Percent())
		})
	}
}

func TestProgressPercentIsMonotonic(t *testing.T) {
	for total := int64(1); total <= 40; total++ {
		prev := -1
		for done := int64(0); done <= total; done++ {
			got := Progress{TotalHours: total, DoneHours: done}.Percent()
			assert.GreaterOrEqual(t, got, prev, "total=%d done=%d", total, done)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
			prev = got
		}
	}
}
