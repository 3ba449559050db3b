// Package timer implements the elapsed-time state machine for one timed
// section attempt: idle -> running <-> paused -> stopped.
package timer

import (
	"sync"
	"time"
)

type State string

const (
	Idle    State = "idle"
	Running State = "running"
	Paused  State = "paused"
	Stopped State = "stopped"
)

// Controller counts elapsed seconds for one attempt. The counter
// increments once per tick interval while running and freezes while
// paused; resuming continues from the frozen value. When a duration
// ceiling is set and reached, the expiry callback fires exactly once and
// ticking stops.
type Controller struct {
	mu       sync.Mutex
	state    State
	elapsed  int
	duration int // Ceiling in seconds, 0 means unlimited.
	onExpire func()
	expired  bool

	ticker *time.Ticker
	done   chan struct{}
}

// New creates an idle controller. duration is the optional ceiling in
// seconds (0 for none); onExpire may be nil.
func New(duration int, onExpire func()) *Controller {
	return &Controller{
		state:    Idle,
		duration: duration,
		onExpire: onExpire,
	}
}

// Start begins ticking from zero. Starting a controller that is not
// idle is a no-op.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle {
		return
	}
	c.state = Running
	c.startTickerLocked()
}

// Pause freezes the counter. Only a running controller can pause.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Running {
		return
	}
	c.state = Paused
}

// Resume continues from the frozen value. Only a paused controller can
// resume.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Paused {
		return
	}
	c.state = Running
}

// Stop ends the attempt and halts ticking. The elapsed value remains
// readable.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Idle || c.state == Stopped {
		return
	}
	c.state = Stopped
	c.stopTickerLocked()
}

// Reset returns the controller to idle and zeroes the counter, e.g.
// when the user switches sections.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTickerLocked()
	c.state = Idle
	c.elapsed = 0
	c.expired = false
}

// Elapsed returns the current counter value in seconds.
func (c *Controller) Elapsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) startTickerLocked() {
	if c.ticker != nil {
		return
	}
	c.ticker = time.NewTicker(time.Second)
	c.done = make(chan struct{})

	go func(tick <-chan time.Time, done chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-tick:
				c.tick()
			}
		}
	}(c.ticker.C, c.done)
}

func (c *Controller) stopTickerLocked() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
	c.done = nil
}

// tick advances the counter by one second. The counter only moves while
// running; a paused or stopped controller ignores ticks.
func (c *Controller) tick() {
	var fire func()

	c.mu.Lock()
	if c.state == Running {
		c.elapsed++
		if c.duration > 0 && c.elapsed >= c.duration && !c.expired {
			c.expired = true
			c.state = Stopped
			c.stopTickerLocked()
			fire = c.onExpire
		}
	}
	c.mu.Unlock()

	// Fire outside the lock so the callback can call back into the
	// controller.
	if fire != nil {
		fire()
	}
}
