package manifold

import "github.com/BltuoBaYe/manifold/collider"

// Collision is the persistent relationship between two objects that currently
// share at least one contact point. A Collision exists exactly as long as its
// contact set is non-empty; once the last contact is removed it is marked
// ended and returned to the pool at the start of the next tick, so end-of-pair
// handlers can still read its final state within the tick that ended it.
//
// Instances are owned by the tracker. Application code receives them by
// reference through notifications and participation lists and must not mutate
// them.
type Collision struct {
	ColliderA *collider.Object
	ColliderB *collider.Object

	contacts map[contactID]ContactPoint
	ended    bool
}

// Ended reports whether the pair has separated and is pending pool return.
func (c *Collision) Ended() bool {
	return c.ended
}

// Count returns the number of contacts currently active between the two objects.
func (c *Collision) Count() int {
	return len(c.contacts)
}

// ContactPoints returns a copy of the active contacts.
func (c *Collision) ContactPoints() []ContactPoint {
	if len(c.contacts) == 0 {
		return nil
	}

	points := make([]ContactPoint, 0, len(c.contacts))
	for _, p := range c.contacts {
		points = append(points, p)
	}

	return points
}

// Other returns the participant opposite to obj, or nil if obj is not part of
// the pair.
func (c *Collision) Other(obj *collider.Object) *collider.Object {
	switch obj {
	case c.ColliderA:
		return c.ColliderB
	case c.ColliderB:
		return c.ColliderA
	}

	return nil
}

func (c *Collision) init(a, b *collider.Object) {
	c.ColliderA = a
	c.ColliderB = b
	c.ended = false

	if c.contacts == nil {
		c.contacts = make(map[contactID]ContactPoint, 4)
	}
}

func (c *Collision) reset() {
	c.ColliderA = nil
	c.ColliderB = nil
	c.ended = false
	clear(c.contacts)
}

// collisionPool recycles Collision instances so that steady-state ticks run
// without allocation. It is a plain free list: the tracker is single-threaded
// and the pool is not safe for concurrent acquire/release.
type collisionPool struct {
	free []*Collision

	// allocations counts constructions that could not be served from the free
	// list
	allocations int
}

func (p *collisionPool) get() *Collision {
	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]

		return c
	}

	p.allocations++

	return &Collision{contacts: make(map[contactID]ContactPoint, 4)}
}

func (p *collisionPool) put(c *Collision) {
	c.reset()
	p.free = append(p.free, c)
}
