package radar

// Pool is a fixed-capacity reusable-handle pool. Handles are created lazily
// up to capacity and then recycled forever; the pool never grows at runtime.
// Acquire returns ok=false on exhaustion — the caller treats that as "cannot
// display this entity this tick", never as an error.
//
// Single-threaded by contract: pools are only touched from the per-tick
// update path of the view that owns them.
type Pool[H any] struct {
	capacity int
	create   func() H
	hide     func(H)
	free     []H
	all      []H
	inUse    int
}

// NewPool builds a pool of at most capacity handles. create makes a fresh
// handle; hide is invoked on every release so a recycled handle carries no
// stale position or styling into its next occupant.
func NewPool[H any](capacity int, create func() H, hide func(H)) *Pool[H] {
	return &Pool[H]{
		capacity: capacity,
		create:   create,
		hide:     hide,
		free:     make([]H, 0, capacity),
		all:      make([]H, 0, capacity),
	}
}

// Acquire returns a free handle, creating one if the pool is under capacity.
// ok is false when every handle is in use.
func (p *Pool[H]) Acquire() (H, bool) {
	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		p.inUse++
		return h, true
	}
	if len(p.all) < p.capacity {
		h := p.create()
		p.all = append(p.all, h)
		p.inUse++
		return h, true
	}
	var zero H
	return zero, false
}

// Release hides a handle and returns it to the free list.
func (p *Pool[H]) Release(h H) {
	p.hide(h)
	p.free = append(p.free, h)
	p.inUse--
}

// Reset hides every handle ever created and marks them all free.
func (p *Pool[H]) Reset() {
	p.free = p.free[:0]
	for _, h := range p.all {
		p.hide(h)
		p.free = append(p.free, h)
	}
	p.inUse = 0
}

// InUse returns the number of currently acquired handles.
func (p *Pool[H]) InUse() int { return p.inUse }

// Capacity returns the fixed capacity set at construction.
func (p *Pool[H]) Capacity() int { return p.capacity }
