package world

// Sprint is the player's sprint energy and cooldown state.
type Sprint struct {
	Energy    float64
	Cooldown  float64
	Sprinting bool
}

// Regenerate runs the start-of-tick bookkeeping. While a cooldown is
// pending it counts down and sprinting is forced off. Otherwise energy
// refills at regen per second when the player was not sprinting.
func (s *Sprint) Regenerate(dt, regen, maxEnergy float64) {
	if s.Cooldown > 0 {
		s.Cooldown = max(0, s.Cooldown-dt)
		s.Sprinting = false
		return
	}
	if s.Energy < maxEnergy && !s.Sprinting {
		s.Energy = min(maxEnergy, s.Energy+regen*dt)
	}
}

// Spend decides whether this tick moves at sprint speed and drains energy
// accordingly. Emptying the bar stops sprinting and starts the cooldown;
// the tick that empties it still counts as a sprint tick.
func (s *Sprint) Spend(want bool, dt, use, cooldown float64) bool {
	if !want || s.Energy <= 0 || s.Cooldown > 0 {
		s.Sprinting = false
		return false
	}

	s.Sprinting = true
	s.Energy -= use * dt
	if s.Energy <= 0 {
		s.Energy = 0
		s.Sprinting = false
		s.Cooldown = cooldown
	}
	return true
}

// Exhausted reports whether the cooldown lockout is running.
func (s Sprint) Exhausted() bool {
	return s.Cooldown > 0
}
