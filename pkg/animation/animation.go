package animation

import "time"

// Animation is a fixed-duration progression a widget samples on every
// redraw. Widgets keep an Animation in their tree state, sample it with the
// frame time, and request the next redraw until it finishes.
type Animation struct {
	start    time.Time
	duration time.Duration
	curve    func(float64) float64
}

// New starts an animation at the given instant.
func New(start time.Time, duration time.Duration, curve func(float64) float64) Animation {
	if curve == nil {
		curve = LinearCurve
	}
	return Animation{start: start, duration: duration, curve: curve}
}

// IsZero reports whether the animation was never started.
func (a Animation) IsZero() bool {
	return a.start.IsZero()
}

// Value returns the eased progress in [0, 1] at the given instant.
func (a Animation) Value(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	t := float64(now.Sub(a.start)) / float64(a.duration)
	return a.curve(clampUnit(t))
}

// IsFinished reports whether the animation has completed at the instant.
func (a Animation) IsFinished(now time.Time) bool {
	return !now.Before(a.start.Add(a.duration))
}

// Deadline returns when the animation completes.
func (a Animation) Deadline() time.Time {
	return a.start.Add(a.duration)
}
