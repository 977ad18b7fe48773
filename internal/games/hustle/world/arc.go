package world

import "math"

// ArcHeight returns the jump height t seconds into an arc lasting duration.
// The height is zero outside the open interval (0, duration).
func ArcHeight(maxHeight, t, duration float64) float64 {
	if duration <= 0 || t <= 0 || t >= duration {
		return 0
	}
	return maxHeight * math.Sin(math.Pi*t/duration)
}

// Arc is a sine-shaped jump timer shared by the player and NPCs.
type Arc struct {
	Elapsed   float64
	Duration  float64
	MaxHeight float64
	Active    bool
}

// Start begins a new arc. It does nothing while an arc is in progress.
func (a *Arc) Start(maxHeight, duration float64) bool {
	if a.Active {
		return false
	}
	*a = Arc{Duration: duration, MaxHeight: maxHeight, Active: true}
	return true
}

// Advance moves the arc forward by dt. The arc ends once Elapsed reaches
// Duration.
func (a *Arc) Advance(dt float64) {
	if !a.Active {
		return
	}
	a.Elapsed += dt
	if a.Elapsed >= a.Duration {
		a.Active = false
		a.Elapsed = 0
	}
}

// Cancel ends the arc immediately.
func (a *Arc) Cancel() {
	a.Active = false
	a.Elapsed = 0
}

// Height returns the current height above ground.
func (a Arc) Height() float64 {
	if !a.Active {
		return 0
	}
	return ArcHeight(a.MaxHeight, a.Elapsed, a.Duration)
}
