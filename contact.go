package manifold

import (
	"unsafe"

	"github.com/BltuoBaYe/manifold/collider"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactPoint describes one point of surface overlap between two objects, as
// reported by the backend for a single tick. Distance is the signed separation
// along Normal; negative means the surfaces interpenetrate. The numeric fields
// are payload only: identity is carried entirely by the two participants.
type ContactPoint struct {
	ColliderA *collider.Object
	ColliderB *collider.Object

	Distance    float64
	Normal      mgl64.Vec3
	PositionOnA mgl64.Vec3
	PositionOnB mgl64.Vec3
}

// Involves reports whether obj is one of the two participants.
func (p ContactPoint) Involves(obj *collider.Object) bool {
	return p.ColliderA == obj || p.ColliderB == obj
}

// contactID is the cross-frame identity of a contact. Two reports denote the
// same contact iff they involve the same two objects, regardless of where the
// surfaces touch this tick.
type contactID struct {
	a *collider.Object
	b *collider.Object
}

func idOf(p ContactPoint) contactID {
	a, b := orderObjects(p.ColliderA, p.ColliderB)

	return contactID{a: a, b: b}
}

// pairKey identifies an unordered object pair in the registry.
type pairKey struct {
	a *collider.Object
	b *collider.Object
}

func makePairKey(a, b *collider.Object) pairKey {
	a, b = orderObjects(a, b)

	return pairKey{a: a, b: b}
}

// orderObjects fixes a canonical participant order so that (A,B) and (B,A)
// produce the same key
func orderObjects(a, b *collider.Object) (*collider.Object, *collider.Object) {
	ptrA := uintptr(unsafe.Pointer(a))
	ptrB := uintptr(unsafe.Pointer(b))

	if ptrB < ptrA {
		return b, a
	}

	return a, b
}
