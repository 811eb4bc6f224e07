package async

import (
	"sync"
	"time"
)

// MinConfirmationHold is the shortest time a transient confirmation stays up.
const MinConfirmationHold = 2 * time.Second

// Confirmation is a flag that reverts on its own after a fixed hold. Only
// the clock reverts it; no other action is needed.
type Confirmation struct {
	clock    Clock
	hold     time.Duration
	onChange func()

	mu    sync.Mutex
	shown bool
	seq   uint64
	timer Timer
}

func NewConfirmation(clock Clock, hold time.Duration, onChange func()) *Confirmation {
	if clock == nil {
		clock = SystemClock{}
	}
	if hold < MinConfirmationHold {
		hold = MinConfirmationHold
	}
	if onChange == nil {
		onChange = func() {}
	}
	return &Confirmation{clock: clock, hold: hold, onChange: onChange}
}

// Show raises the flag and (re)starts the hold.
func (c *Confirmation) Show() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.seq++
	seq := c.seq
	c.shown = true
	c.timer = c.clock.AfterFunc(c.hold, func() { c.revert(seq) })
	c.mu.Unlock()

	c.onChange()
}

func (c *Confirmation) Shown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shown
}

func (c *Confirmation) Hold() time.Duration {
	return c.hold
}

// Stop cancels a pending revert and lowers the flag.
func (c *Confirmation) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.seq++
	c.shown = false
}

func (c *Confirmation) revert(seq uint64) {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.shown = false
	c.timer = nil
	c.mu.Unlock()

	c.onChange()
}
