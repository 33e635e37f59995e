package presentation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressSlides(t *testing.T) {
	s := NewState()
	s.TotalSlides = 4
	s.CurrentSlide = 1

	p := Progress(s, DefaultEstimatedDuration)
	assert.Equal(t, 50, p.Percent)
	assert.Equal(t, 2, p.CurrentSlide)
	assert.Equal(t, 4, p.TotalSlides)
}

func TestProgressWithoutSlides(t *testing.T) {
	p := Progress(NewState(), DefaultEstimatedDuration)
	assert.Zero(t, p.Fraction)
	assert.Zero(t, p.Percent)
}

func TestProgressTime(t *testing.T) {
	tests := []struct {
		name        string
		elapsed     int
		wantPercent int
		wantRemain  int
		wantOver    bool
	}{
		{"start", 0, 0, 2700, false},
		{"half", 1350, 50, 1350, false},
		{"exactly on time", 2700, 100, 0, false},
		{"one second over", 2701, 100, 0, true},
		{"way over", 9000, 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.ElapsedSeconds = tt.elapsed
			p := Progress(s, 2700*time.Second)
			assert.Equal(t, tt.wantPercent, p.TimePercent)
			assert.Equal(t, tt.wantRemain, p.RemainingSeconds)
			assert.Equal(t, tt.wantOver, p.IsOvertime)
		})
	}
}

func TestProgressDefaultsEstimate(t *testing.T) {
	p := Progress(NewState(), 0)
	assert.Equal(t, 2700, p.EstimatedDurationSec)
}

func TestProgressSubSecondEstimate(t *testing.T) {
	s := NewState()
	s.ElapsedSeconds = 27

	p := Progress(s, 500*time.Millisecond)
	assert.Equal(t, 2700, p.EstimatedDurationSec)
	assert.Equal(t, 1, p.TimePercent)
	assert.False(t, p.IsOvertime)
	assert.False(t, math.IsInf(p.TimeFraction, 0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "1:05", FormatDuration(65))
	assert.Equal(t, "45:00", FormatDuration(2700))
	assert.Equal(t, "0:00", FormatDuration(-4))
}
