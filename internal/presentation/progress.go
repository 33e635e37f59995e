package presentation

import (
	"fmt"
	"math"
	"time"
)

// DefaultEstimatedDuration is the talk length assumed when none is configured
const DefaultEstimatedDuration = 45 * time.Minute

// ProgressView is a read-only projection of State for progress displays
type ProgressView struct {
	Fraction             float64
	Percent              int
	TimeFraction         float64
	TimePercent          int
	RemainingSeconds     int
	IsOvertime           bool
	ElapsedSeconds       int
	CurrentSlide         int // 1-based for display
	TotalSlides          int
	EstimatedDurationSec int
}

// Progress computes the progress view of s for a talk of the given length.
// An estimate under one second falls back to DefaultEstimatedDuration.
func Progress(s State, estimated time.Duration) ProgressView {
	if estimated < time.Second {
		estimated = DefaultEstimatedDuration
	}
	est := int(estimated / time.Second)

	var fraction float64
	if s.TotalSlides > 0 {
		fraction = float64(s.CurrentSlide+1) / float64(s.TotalSlides)
	}
	timeFraction := float64(s.ElapsedSeconds) / float64(est)

	return ProgressView{
		Fraction:             fraction,
		Percent:              int(math.Round(fraction * 100)),
		TimeFraction:         timeFraction,
		TimePercent:          min(int(math.Round(timeFraction*100)), 100),
		RemainingSeconds:     max(0, est-s.ElapsedSeconds),
		IsOvertime:           s.ElapsedSeconds > est,
		ElapsedSeconds:       s.ElapsedSeconds,
		CurrentSlide:         s.CurrentSlide + 1,
		TotalSlides:          s.TotalSlides,
		EstimatedDurationSec: est,
	}
}

// FormatDuration renders seconds as m:ss
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
