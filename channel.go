package manifold

// Channel delivers items to consumers that have declared demand in advance.
// The demand balance is negative while consumers are owed deliveries:
// Subscribe moves it one step further below zero and each accepted Send moves
// it one step back toward zero. A Send issued at zero balance is dropped, so
// the channel never queues beyond outstanding demand. It is a best-effort live
// notification primitive, not a durable queue.
//
// The balance is mutated by the consuming side (Subscribe/Receive) and by the
// tracker's dispatch step; both run on the single simulation goroutine.
type Channel[T any] struct {
	balance int
	inbox   []T
}

// Subscribe registers demand for exactly one more item. Consumers re-subscribe
// after each received item to keep the stream flowing.
func (c *Channel[T]) Subscribe() {
	c.balance--
}

// Balance returns the current demand balance.
func (c *Channel[T]) Balance() int {
	return c.balance
}

// Send offers v to the channel and reports whether it was accepted. The item
// is dropped when no demand is outstanding.
func (c *Channel[T]) Send(v T) bool {
	if c.balance >= 0 {
		return false
	}

	c.balance++
	c.inbox = append(c.inbox, v)

	return true
}

// Receive pops the oldest delivered item.
func (c *Channel[T]) Receive() (T, bool) {
	if len(c.inbox) == 0 {
		var zero T
		return zero, false
	}

	v := c.inbox[0]
	copy(c.inbox, c.inbox[1:])
	c.inbox = c.inbox[:len(c.inbox)-1]

	return v, true
}

// Pending returns the number of delivered items not yet received.
func (c *Channel[T]) Pending() int {
	return len(c.inbox)
}

// ObjectEvents groups the five notification channels of one tracked object.
// Pair notifications carry the Collision itself; contact notifications carry
// the contact's latest payload.
type ObjectEvents struct {
	CollisionBegan Channel[*Collision]
	CollisionEnded Channel[*Collision]
	ContactBegan   Channel[ContactPoint]
	ContactChanged Channel[ContactPoint]
	ContactEnded   Channel[ContactPoint]
}
