package manifold

import (
	"testing"

	"github.com/BltuoBaYe/manifold/collider"
	"github.com/go-gl/mathgl/mgl64"
)

func testObject(id string) *collider.Object {
	obj := collider.NewObject(mgl64.Vec3{}, &collider.Sphere{Radius: 1}, collider.BodyTypeDynamic)
	obj.Id = id
	return obj
}

func contactBetween(a, b *collider.Object, distance float64) ContactPoint {
	return ContactPoint{
		ColliderA:   a,
		ColliderB:   b,
		Distance:    distance,
		Normal:      mgl64.Vec3{0, 1, 0},
		PositionOnA: mgl64.Vec3{0, 1, 0},
		PositionOnB: mgl64.Vec3{0, -1, 0},
	}
}

func TestSnapshot_AddDeduplicatesByIdentity(t *testing.T) {
	x := testObject("x")
	y := testObject("y")
	s := NewSnapshot()

	if !s.Add(contactBetween(x, y, -0.1)) {
		t.Error("Expected first add to report a new identity")
	}
	if s.Add(contactBetween(x, y, -0.5)) {
		t.Error("Expected second add with the same participants to fold into the first")
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", s.Len())
	}
}

func TestSnapshot_IdentityIgnoresParticipantOrder(t *testing.T) {
	x := testObject("x")
	y := testObject("y")
	s := NewSnapshot()

	s.Add(contactBetween(x, y, -0.1))

	if !s.Contains(contactBetween(y, x, -0.9)) {
		t.Error("Expected (y,x) to have the same identity as (x,y)")
	}
	if s.Add(contactBetween(y, x, -0.9)) {
		t.Error("Expected swapped participants to deduplicate")
	}
}

func TestSnapshot_IdentityIsNotPayload(t *testing.T) {
	x := testObject("x")
	y := testObject("y")
	z := testObject("z")
	s := NewSnapshot()

	// Same numbers, different participants: distinct identities.
	s.Add(contactBetween(x, y, -0.1))
	if !s.Add(contactBetween(x, z, -0.1)) {
		t.Error("Expected contact against a different object to be a new identity")
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", s.Len())
	}
}

func TestSnapshot_Clear(t *testing.T) {
	x := testObject("x")
	y := testObject("y")
	s := NewSnapshot()

	s.Add(contactBetween(x, y, -0.1))
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Expected empty snapshot after clear, got %d entries", s.Len())
	}
	if s.Contains(contactBetween(x, y, -0.1)) {
		t.Error("Expected cleared snapshot to contain nothing")
	}
}

// added, changed and removed are disjoint and together cover every identity
// in the union of the two snapshots.
func TestTracker_DiffCompleteness(t *testing.T) {
	tr := newTestTracker(newFakeSource())

	a := testObject("a")
	b := testObject("b")
	c := testObject("c")
	d := testObject("d")

	onlyPrev := contactBetween(a, b, -0.1)
	inBoth := contactBetween(b, c, -0.2)
	onlyCurr := contactBetween(c, d, -0.3)

	tr.previous.Add(onlyPrev)
	tr.previous.Add(inBoth)
	tr.current.Add(inBoth)
	tr.current.Add(onlyCurr)

	tr.diff()

	if len(tr.added) != 1 || idOf(tr.added[0]) != idOf(onlyCurr) {
		t.Errorf("Expected added = {current-only contact}, got %d entries", len(tr.added))
	}
	if len(tr.changed) != 1 || idOf(tr.changed[0]) != idOf(inBoth) {
		t.Errorf("Expected changed = {shared contact}, got %d entries", len(tr.changed))
	}
	if len(tr.removed) != 1 || idOf(tr.removed[0]) != idOf(onlyPrev) {
		t.Errorf("Expected removed = {previous-only contact}, got %d entries", len(tr.removed))
	}

	// Disjointness over identities.
	seen := map[contactID]int{}
	for _, p := range tr.added {
		seen[idOf(p)]++
	}
	for _, p := range tr.changed {
		seen[idOf(p)]++
	}
	for _, p := range tr.removed {
		seen[idOf(p)]++
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("Expected each identity classified once, %v classified %d times", id, count)
		}
	}
	if len(seen) != 3 {
		t.Errorf("Expected union coverage of 3 identities, got %d", len(seen))
	}
}
