// Package manifold reconciles the unordered contact reports of a discrete-time
// physics backend into stable collision pairs that persist across frames, and
// delivers ordered begin/update/end notifications to consumers that declared
// demand for them.
package manifold

import (
	"log"

	"github.com/BltuoBaYe/manifold/collider"
)

// Tracker runs one reconciliation pass per simulation tick: it takes a fresh
// snapshot of the backend's contacts, diffs it against the previous tick's
// snapshot by contact identity, updates the Collision pairs and the registry,
// and dispatches the resulting notifications.
//
// A tick is strictly sequential and runs to completion on a single goroutine;
// the tracker is not safe for concurrent use on the same instance.
type Tracker struct {
	source Source

	// Logf receives reconciliation-anomaly warnings. Defaults to log.Printf;
	// set to nil to silence them.
	Logf func(format string, args ...any)

	MaxSubSteps   int
	FixedTimeStep float64

	objects []*collider.Object

	current  *Snapshot
	previous *Snapshot

	reg  registry
	pool collisionPool

	events map[*collider.Object]*ObjectEvents
	slim   map[*collider.Object][]ContactPoint

	// per-tick identity-classified deltas
	added   []ContactPoint
	changed []ContactPoint
	removed []ContactPoint

	// notifications pending dispatch
	beganPairs      []*Collision
	endedPairs      []*Collision
	beganContacts   []ContactPoint
	changedContacts []ContactPoint
	endedContacts   []ContactPoint

	// pairs whose end notification went out, reclaimed at the next tick's begin
	retiring []*Collision
}

func NewTracker(source Source, cfg Config) *Tracker {
	return &Tracker{
		source:        source,
		Logf:          log.Printf,
		MaxSubSteps:   cfg.MaxSubSteps,
		FixedTimeStep: cfg.FixedTimeStep,
		current:       NewSnapshot(),
		previous:      NewSnapshot(),
		reg:           newRegistry(),
		events:        make(map[*collider.Object]*ObjectEvents),
		slim:          make(map[*collider.Object][]ContactPoint),
	}
}

// Track registers obj for the per-tick contact sweep.
func (t *Tracker) Track(obj *collider.Object) {
	t.objects = append(t.objects, obj)
}

// Untrack removes obj from the sweep and runs the targeted cleanup pass, so
// that no contact identity referencing obj survives into the next diff. End
// notifications for pairs emptied by the cleanup go out on the next tick.
func (t *Tracker) Untrack(obj *collider.Object) {
	for i, o := range t.objects {
		if o == obj {
			t.objects = append(t.objects[:i], t.objects[i+1:]...)
			break
		}
	}

	t.CleanContacts(obj)
	delete(t.events, obj)
	delete(t.slim, obj)
}

// Events returns obj's notification channel set, creating it on first use.
func (t *Tracker) Events(obj *collider.Object) *ObjectEvents {
	ev := t.events[obj]
	if ev == nil {
		ev = &ObjectEvents{}
		t.events[obj] = ev
	}

	return ev
}

// Collisions returns the pairs obj currently participates in. The slice is
// owned by the tracker and only valid until the next tick.
func (t *Tracker) Collisions(obj *collider.Object) []*Collision {
	return t.reg.collisionsOf(obj)
}

// Step advances the backend and reconciles its contacts. If the backend step
// fails, reconciliation is skipped entirely for this tick and the error is
// returned; the tracker's bookkeeping is left untouched.
func (t *Tracker) Step(dt float64) error {
	if err := t.source.Step(dt, t.MaxSubSteps, t.FixedTimeStep); err != nil {
		return err
	}

	t.Update()

	return nil
}

// Update runs one reconciliation pass against the backend's current contacts
// without stepping the backend.
func (t *Tracker) Update() {
	t.begin()
	t.collect()
	t.diff()
	t.applyAdded()
	t.applyChanged()
	t.applyRemoved()
	t.dispatch()
}

// begin reclaims the pairs whose end notification went out last tick, then
// swaps the snapshot buffers. Only the buffer about to be repopulated is
// cleared; the one still read as previous is left alone.
func (t *Tracker) begin() {
	for _, c := range t.retiring {
		t.pool.put(c)
	}
	t.retiring = t.retiring[:0]

	t.current, t.previous = t.previous, t.current
	t.current.Clear()

	t.added = t.added[:0]
	t.changed = t.changed[:0]
	t.removed = t.removed[:0]
}

// collect populates the current snapshot with fresh contacts for every
// tracked object. Objects in slim query mode stay outside the snapshot/diff
// machinery entirely.
func (t *Tracker) collect() {
	for _, obj := range t.objects {
		if !obj.Enabled || obj.SlimContacts {
			continue
		}

		t.source.ContactsWith(obj, func(p ContactPoint) {
			// Both endpoints may be tracked; the second report folds into
			// the first.
			t.current.Add(p)
		})
	}
}

// diff splits the current and previous snapshots into three disjoint delta
// sets by contact identity: added = current − previous, changed = current ∩
// previous (same identity, fresh payload), removed = previous − current.
func (t *Tracker) diff() {
	for id, p := range t.current.points {
		if _, ok := t.previous.points[id]; ok {
			t.changed = append(t.changed, p)
		} else {
			t.added = append(t.added, p)
		}
	}

	for id, p := range t.previous.points {
		if _, ok := t.current.points[id]; !ok {
			t.removed = append(t.removed, p)
		}
	}
}

func (t *Tracker) applyAdded() {
	for _, p := range t.added {
		t.adoptContact(idOf(p), p)
	}
}

// adoptContact is the shared admission path: it finds or creates the owning
// pair for a contact, registers ownership, and records the begin
// notifications.
func (t *Tracker) adoptContact(id contactID, p ContactPoint) {
	col := t.reg.pairFor(p.ColliderA, p.ColliderB)
	if col == nil {
		col = t.pool.get()
		col.init(p.ColliderA, p.ColliderB)
		t.reg.insert(col)
		t.beganPairs = append(t.beganPairs, col)
	} else if _, dup := col.contacts[id]; dup {
		t.logf("manifold: duplicate contact between %v and %v, skipping", p.ColliderA.Id, p.ColliderB.Id)
		return
	}

	col.contacts[id] = p
	t.reg.setOwner(id, col)
	t.beganContacts = append(t.beganContacts, p)
}

func (t *Tracker) applyChanged() {
	for _, p := range t.changed {
		id := idOf(p)

		col := t.reg.owner(id)
		if col == nil {
			// The identity is in both snapshots but never went through the
			// added pass: an on-demand query seeded it before any sweep saw
			// it. Admit it now so the pair lifecycle starts this tick.
			t.adoptContact(id, p)
			continue
		}

		// Same identity, fresh payload: re-insert so readers see this tick's
		// numbers.
		delete(col.contacts, id)
		col.contacts[id] = p
		t.changedContacts = append(t.changedContacts, p)
	}
}

func (t *Tracker) applyRemoved() {
	for _, p := range t.removed {
		t.removeContact(idOf(p), p)
	}
}

// removeContact is the shared removal path: it drops the contact from its
// owning pair and the reverse registry, and retires the pair once its last
// contact goes. Retirement is deferred: the pair is reset and pooled only at
// the start of the next tick, after its end notification has been delivered.
func (t *Tracker) removeContact(id contactID, p ContactPoint) {
	col := t.reg.owner(id)
	if col == nil {
		t.logf("manifold: removed contact between %v and %v has no owning pair, skipping", p.ColliderA.Id, p.ColliderB.Id)
		return
	}

	delete(col.contacts, id)
	t.reg.clearOwner(id)
	t.endedContacts = append(t.endedContacts, p)

	if len(col.contacts) == 0 {
		t.reg.remove(col)
		col.ended = true
		t.endedPairs = append(t.endedPairs, col)
	}
}

// dispatch delivers the pending notifications to both participants of each
// event, honoring outstanding demand. Within a pair's lifecycle the begin
// notification precedes any contact notification, and the end notification
// follows the last contact-removed notification.
func (t *Tracker) dispatch() {
	for _, c := range t.beganPairs {
		if ev := t.events[c.ColliderA]; ev != nil {
			ev.CollisionBegan.Send(c)
		}
		if ev := t.events[c.ColliderB]; ev != nil {
			ev.CollisionBegan.Send(c)
		}
	}

	for _, p := range t.beganContacts {
		if ev := t.events[p.ColliderA]; ev != nil {
			ev.ContactBegan.Send(p)
		}
		if ev := t.events[p.ColliderB]; ev != nil {
			ev.ContactBegan.Send(p)
		}
	}

	for _, p := range t.changedContacts {
		if ev := t.events[p.ColliderA]; ev != nil {
			ev.ContactChanged.Send(p)
		}
		if ev := t.events[p.ColliderB]; ev != nil {
			ev.ContactChanged.Send(p)
		}
	}

	for _, p := range t.endedContacts {
		if ev := t.events[p.ColliderA]; ev != nil {
			ev.ContactEnded.Send(p)
		}
		if ev := t.events[p.ColliderB]; ev != nil {
			ev.ContactEnded.Send(p)
		}
	}

	for _, c := range t.endedPairs {
		if ev := t.events[c.ColliderA]; ev != nil {
			ev.CollisionEnded.Send(c)
		}
		if ev := t.events[c.ColliderB]; ev != nil {
			ev.CollisionEnded.Send(c)
		}
	}

	t.retiring = append(t.retiring, t.endedPairs...)

	t.beganPairs = t.beganPairs[:0]
	t.endedPairs = t.endedPairs[:0]
	t.beganContacts = t.beganContacts[:0]
	t.changedContacts = t.changedContacts[:0]
	t.endedContacts = t.endedContacts[:0]
}

// ContactTest queries the backend for the contacts currently touching obj,
// bypassing the per-tick sweep. With SlimContacts set on obj the result is an
// append-only list owned by obj's slot, rebuilt on every call with no
// deduplication and no cross-frame bookkeeping. Otherwise the result is the
// full deduplicated list of contacts touching obj right now, and the contacts
// are folded into the current snapshot so a later CleanContacts pass sees
// them.
func (t *Tracker) ContactTest(obj *collider.Object) []ContactPoint {
	if obj.SlimContacts {
		list := t.slim[obj][:0]
		t.source.ContactsWith(obj, func(p ContactPoint) {
			list = append(list, p)
		})
		t.slim[obj] = list

		return list
	}

	var out []ContactPoint
	seen := make(map[contactID]struct{})
	t.source.ContactsWith(obj, func(p ContactPoint) {
		id := idOf(p)
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}

		t.current.Add(p)
		out = append(out, p)
	})

	return out
}

// CleanContacts removes every current-frame contact referencing obj, running
// the same removal path as regular reconciliation, and purges the entries from
// the snapshot. Call it before removing an object from the simulation so the
// next diff never sees a contact with a dead side.
func (t *Tracker) CleanContacts(obj *collider.Object) {
	for id, p := range t.current.points {
		if !p.Involves(obj) {
			continue
		}

		t.removeContact(id, p)
		delete(t.current.points, id)
	}
}

func (t *Tracker) logf(format string, args ...any) {
	if t.Logf != nil {
		t.Logf(format, args...)
	}
}
