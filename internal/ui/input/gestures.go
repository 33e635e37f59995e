package input

import (
	"math"
	"time"
)

// Default gesture thresholds
const (
	DefaultMinSwipeDistance    = 50
	DefaultMaxVerticalDistance = 100
	DefaultWheelCooldown       = 500 * time.Millisecond
)

// SwipeDetector turns a press/release pair into a horizontal swipe
type SwipeDetector struct {
	MinDistance float64
	MaxVertical float64

	startX, startY float64
	tracking       bool
}

// NewSwipeDetector creates a detector; non-positive thresholds use the defaults
func NewSwipeDetector(minDistance, maxVertical float64) *SwipeDetector {
	if minDistance <= 0 {
		minDistance = DefaultMinSwipeDistance
	}
	if maxVertical <= 0 {
		maxVertical = DefaultMaxVerticalDistance
	}
	return &SwipeDetector{MinDistance: minDistance, MaxVertical: maxVertical}
}

// Begin records where the pointer went down
func (d *SwipeDetector) Begin(x, y float64) {
	d.startX, d.startY = x, y
	d.tracking = true
}

// End classifies the gesture finished at (x, y). Releases without a
// preceding Begin are ignored.
func (d *SwipeDetector) End(x, y float64) Gesture {
	if !d.tracking {
		return GestureNone
	}
	d.tracking = false
	return d.Classify(x-d.startX, y-d.startY)
}

// Cancel forgets a pending press
func (d *SwipeDetector) Cancel() {
	d.tracking = false
}

// Classify maps a drag delta to a swipe. Anything short of the horizontal
// threshold or too vertical is a tap or scroll and yields GestureNone.
func (d *SwipeDetector) Classify(dx, dy float64) Gesture {
	if math.Abs(dx) <= d.MinDistance || math.Abs(dy) >= d.MaxVertical {
		return GestureNone
	}
	if dx > 0 {
		return GestureSwipeRight
	}
	return GestureSwipeLeft
}

// WheelGate turns wheel events into at most one gesture per cooldown window.
// The first qualifying event opens the window; events inside it are dropped.
type WheelGate struct {
	Cooldown time.Duration

	last  time.Time
	armed bool
}

// NewWheelGate creates a gate; a non-positive cooldown uses the default
func NewWheelGate(cooldown time.Duration) *WheelGate {
	if cooldown <= 0 {
		cooldown = DefaultWheelCooldown
	}
	return &WheelGate{Cooldown: cooldown}
}

// Feed reports the gesture for a wheel event with deltas (dx, dy) seen at
// time at. Positive dy scrolls down.
func (g *WheelGate) Feed(dx, dy float64, at time.Time) Gesture {
	if g.armed && at.Sub(g.last) < g.Cooldown {
		return GestureNone
	}
	if math.Abs(dy) <= math.Abs(dx) {
		return GestureNone
	}
	g.last = at
	g.armed = true
	if dy > 0 {
		return GestureWheelDown
	}
	return GestureWheelUp
}
