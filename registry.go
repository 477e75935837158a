package manifold

import "github.com/BltuoBaYe/manifold/collider"

// registry resolves the live Collision for an unordered object pair and the
// owning Collision for a contact identity without scanning all pairs. It also
// keeps the per-object participation lists: non-owning back-references from
// each object to the pairs it currently takes part in.
type registry struct {
	pairs    map[pairKey]*Collision
	owners   map[contactID]*Collision
	byObject map[*collider.Object][]*Collision
}

func newRegistry() registry {
	return registry{
		pairs:    make(map[pairKey]*Collision),
		owners:   make(map[contactID]*Collision),
		byObject: make(map[*collider.Object][]*Collision),
	}
}

// pairFor returns the single live Collision for the unordered pair (a, b),
// or nil if the two objects are not currently colliding.
func (r *registry) pairFor(a, b *collider.Object) *Collision {
	return r.pairs[makePairKey(a, b)]
}

// insert registers a freshly initialized Collision under its pair key and
// links it into both participants' lists.
func (r *registry) insert(c *Collision) {
	r.pairs[makePairKey(c.ColliderA, c.ColliderB)] = c
	r.byObject[c.ColliderA] = append(r.byObject[c.ColliderA], c)
	r.byObject[c.ColliderB] = append(r.byObject[c.ColliderB], c)
}

// remove unregisters c from the pair map and unlinks it from both
// participants' lists. Contact ownership entries are cleared separately, one
// per removed contact.
func (r *registry) remove(c *Collision) {
	delete(r.pairs, makePairKey(c.ColliderA, c.ColliderB))
	r.unlink(c.ColliderA, c)
	r.unlink(c.ColliderB, c)
}

func (r *registry) unlink(obj *collider.Object, c *Collision) {
	list := r.byObject[obj]
	for i, entry := range list {
		if entry == c {
			last := len(list) - 1
			list[i] = list[last]
			list[last] = nil
			list = list[:last]
			break
		}
	}

	if len(list) == 0 {
		delete(r.byObject, obj)
	} else {
		r.byObject[obj] = list
	}
}

func (r *registry) collisionsOf(obj *collider.Object) []*Collision {
	return r.byObject[obj]
}

func (r *registry) owner(id contactID) *Collision {
	return r.owners[id]
}

func (r *registry) setOwner(id contactID, c *Collision) {
	r.owners[id] = c
}

func (r *registry) clearOwner(id contactID) {
	delete(r.owners, id)
}
