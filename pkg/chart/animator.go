package chart

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// AnimState is the lifecycle of a chart intro animation.
type AnimState int

const (
	// AnimIdle means the animation has not been triggered.
	AnimIdle AnimState = iota
	// AnimAnimating means redraw ticks are advancing the progress value.
	AnimAnimating
	// AnimSettled means progress reached its target; no more redraws are
	// needed until the animator is reset.
	AnimSettled
)

const animSettleEpsilon = 0.001

// AnimFPS is the redraw rate the spring is tuned for. The owner schedules
// ticks at this rate while the animator reports AnimAnimating.
const AnimFPS = 30

// Animator drives the radial/hover progress value from 0 to 1 with a
// spring. It is a plain state machine: the owning view triggers it when
// the chart becomes visible, advances it once per redraw tick and resets
// it when the underlying data changes or the view is torn down.
type Animator struct {
	state  AnimState
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewAnimator creates an idle animator.
func NewAnimator() *Animator {
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(AnimFPS), 5.0, 0.9),
	}
}

// Start triggers the intro animation. Starting an already running or
// settled animator is a no-op.
func (a *Animator) Start() {
	if a.state == AnimIdle {
		a.state = AnimAnimating
	}
}

// Update advances the spring by one redraw tick and reports whether
// further ticks are needed.
func (a *Animator) Update() bool {
	if a.state != AnimAnimating {
		return false
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, 1)
	if math.Abs(1-a.pos) < animSettleEpsilon && math.Abs(a.vel) < animSettleEpsilon {
		a.pos = 1
		a.vel = 0
		a.state = AnimSettled
		return false
	}
	return true
}

// Progress returns the current animation progress clamped to [0, 1].
func (a *Animator) Progress() float64 {
	if a.pos < 0 {
		return 0
	}
	if a.pos > 1 {
		return 1
	}
	return a.pos
}

// State reports the animator's lifecycle state.
func (a *Animator) State() AnimState {
	return a.state
}

// Reset returns the animator to idle with zero progress. Owners call this
// when inputs change or the view goes away.
func (a *Animator) Reset() {
	a.state = AnimIdle
	a.pos = 0
	a.vel = 0
}
