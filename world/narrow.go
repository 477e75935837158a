package world

import (
	"github.com/BltuoBaYe/manifold"
	"github.com/BltuoBaYe/manifold/collider"
	"github.com/go-gl/mathgl/mgl64"
)

const degenerateDistance = 1e-12

// contact computes the deepest contact between two objects, if they touch.
// Supported combinations are sphere/sphere and sphere/plane; the normal points
// from A toward B and Distance is the signed separation along it.
func contact(a, b *collider.Object) (manifold.ContactPoint, bool) {
	switch sa := a.Shape.(type) {
	case *collider.Sphere:
		switch sb := b.Shape.(type) {
		case *collider.Sphere:
			return sphereSphere(a, sa, b, sb)
		case *collider.Plane:
			return spherePlane(a, sa, b, sb)
		}
	case *collider.Plane:
		if sb, ok := b.Shape.(*collider.Sphere); ok {
			p, touching := spherePlane(b, sb, a, sa)
			if !touching {
				return manifold.ContactPoint{}, false
			}
			return flip(p), true
		}
	}

	return manifold.ContactPoint{}, false
}

func flip(p manifold.ContactPoint) manifold.ContactPoint {
	p.ColliderA, p.ColliderB = p.ColliderB, p.ColliderA
	p.PositionOnA, p.PositionOnB = p.PositionOnB, p.PositionOnA
	p.Normal = p.Normal.Mul(-1)

	return p
}

func sphereSphere(a *collider.Object, sa *collider.Sphere, b *collider.Object, sb *collider.Sphere) (manifold.ContactPoint, bool) {
	delta := b.Position.Sub(a.Position)
	centerDist := delta.Len()

	dist := centerDist - sa.Radius - sb.Radius
	if dist > 0 {
		return manifold.ContactPoint{}, false
	}

	// Coincident centers have no meaningful direction; pick one.
	normal := mgl64.Vec3{0, 1, 0}
	if centerDist > degenerateDistance {
		normal = delta.Mul(1 / centerDist)
	}

	return manifold.ContactPoint{
		ColliderA:   a,
		ColliderB:   b,
		Distance:    dist,
		Normal:      normal,
		PositionOnA: a.Position.Add(normal.Mul(sa.Radius)),
		PositionOnB: b.Position.Sub(normal.Mul(sb.Radius)),
	}, true
}

func spherePlane(s *collider.Object, sphere *collider.Sphere, pl *collider.Object, plane *collider.Plane) (manifold.ContactPoint, bool) {
	n := plane.Normal
	centerDist := s.Position.Dot(n) - plane.Distance

	dist := centerDist - sphere.Radius
	if dist > 0 {
		return manifold.ContactPoint{}, false
	}

	return manifold.ContactPoint{
		ColliderA:   s,
		ColliderB:   pl,
		Distance:    dist,
		Normal:      n.Mul(-1),
		PositionOnA: s.Position.Sub(n.Mul(sphere.Radius)),
		PositionOnB: s.Position.Sub(n.Mul(centerDist)),
	}, true
}
