// Package mainloop marshals work onto the host's UI thread.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one scheduled callback.
// The latest callback posted for a key before the scheduled one runs wins.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	post      func(func())
	merged    uint64
	destroyed bool
}

// NewCoalescer schedules through post, typically the host's idle-add.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		pending: make(map[string]func()),
		post:    post,
	}
}

// Post schedules fn under key. It reports whether a new callback was
// scheduled; false means fn replaced a pending one or was dropped.
func (c *Coalescer) Post(key string, fn func()) bool {
	if fn == nil || key == "" {
		return false
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return false
	}
	_, scheduled := c.pending[key]
	c.pending[key] = fn
	if scheduled {
		c.merged++
		c.mu.Unlock()
		return false
	}
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
	return true
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.pending[key]
	delete(c.pending, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if fn != nil && !destroyed {
		fn()
	}
}

// Pending reports whether a callback for key is scheduled but not run yet.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[key]
	return ok
}

// Merged returns how many posts were folded into an already scheduled callback.
func (c *Coalescer) Merged() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.merged
}

// Destroy drops pending work; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]func(){}
	c.mu.Unlock()
}
