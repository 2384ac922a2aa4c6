package hal

import (
	"sync"
	"time"
)

// hostClock follows the wall clock, or, once pinned, advances only when stepped.
// Pinned mode makes headless runs reproducible.
type hostClock struct {
	mu     sync.Mutex
	pinned bool
	now    time.Time
}

func newHostClock() *hostClock { return &hostClock{} }

func (c *hostClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pinned {
		return time.Now()
	}
	return c.now
}

// pin freezes the clock at the current time.
func (c *hostClock) pin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pinned {
		return
	}
	c.pinned = true
	c.now = time.Now()
}

// step advances a pinned clock by d.
func (c *hostClock) step(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pinned {
		c.now = c.now.Add(d)
	}
}
