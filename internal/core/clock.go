package core

import "time"

// Frame carries frame-clock readings into a simulation step.
type Frame struct {
	DT  float64 // Seconds since the previous frame
	FPS float64 // Smoothed frames per second
}

// fpsSmoothing is the weight of the newest sample in the FPS moving average.
const fpsSmoothing = 0.1

// Clock turns frame timestamps into elapsed seconds and an FPS readout.
// The first call to Tick yields DT == 0.
type Clock struct {
	last time.Time
	fps  float64
}

// Tick records a frame at time now and returns the frame reading.
func (c *Clock) Tick(now time.Time) Frame {
	if c.last.IsZero() {
		c.last = now
		return Frame{}
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}

	if dt > 0 {
		sample := 1 / dt
		if c.fps == 0 {
			c.fps = sample
		} else {
			c.fps += (sample - c.fps) * fpsSmoothing
		}
	}

	return Frame{DT: dt, FPS: c.fps}
}

// Reset forgets the previous timestamp so the next Tick yields DT == 0.
// Used after pauses so the simulation does not see one giant frame.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
