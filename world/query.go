package world

import (
	"fmt"
	"math"

	"github.com/BltuoBaYe/manifold/collider"
	"github.com/go-gl/mathgl/mgl64"
)

// Hit describes the nearest intersection found by a cast query.
type Hit struct {
	Object   *collider.Object
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// Raycast finds the nearest enabled object intersecting the ray, honoring the
// same group/mask convention contacts use. dir does not need to be normalized.
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDist float64, group, mask uint32) (Hit, bool) {
	if dir.Len() == 0 {
		return Hit{}, false
	}

	return w.cast(origin, dir.Normalize(), maxDist, 0, group, mask)
}

// SweepSphere casts a sphere of the given radius from origin along dir and
// reports the nearest object it would touch. The shape is validated before
// any backend traversal.
func (w *World) SweepSphere(radius float64, origin, dir mgl64.Vec3, maxDist float64, group, mask uint32) (Hit, bool, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Hit{}, false, fmt.Errorf("world: sweep requires a positive finite radius, got %v", radius)
	}
	if dir.Len() == 0 {
		return Hit{}, false, fmt.Errorf("world: sweep requires a non-zero direction")
	}

	hit, ok := w.cast(origin, dir.Normalize(), maxDist, radius, group, mask)

	return hit, ok, nil
}

// cast walks all bodies and planes with the target geometry inflated by the
// sweep radius; inflate 0 degenerates to a plain ray.
func (w *World) cast(origin, dir mgl64.Vec3, maxDist, inflate float64, group, mask uint32) (Hit, bool) {
	best := Hit{Distance: maxDist}
	found := false

	consider := func(obj *collider.Object) {
		if !obj.Enabled {
			return
		}
		if group&obj.Mask == 0 || obj.Group&mask == 0 {
			return
		}

		var dist float64
		var normal mgl64.Vec3
		var ok bool

		switch s := obj.Shape.(type) {
		case *collider.Sphere:
			dist, ok = raySphere(origin, dir, obj.Position, s.Radius+inflate)
			if ok {
				normal = origin.Add(dir.Mul(dist)).Sub(obj.Position)
				if normal.Len() > degenerateDistance {
					normal = normal.Normalize()
				}
			}
		case *collider.Plane:
			dist, normal, ok = rayPlane(origin, dir, s, inflate)
		default:
			return
		}

		if ok && dist < best.Distance {
			best = Hit{
				Object:   obj,
				Point:    origin.Add(dir.Mul(dist)),
				Normal:   normal,
				Distance: dist,
			}
			found = true
		}
	}

	for _, obj := range w.bodies {
		consider(obj)
	}
	for _, obj := range w.planes {
		consider(obj)
	}

	return best, found
}

func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	m := origin.Sub(center)
	b := m.Dot(dir)
	c := m.Dot(m) - radius*radius

	// Ray starts outside and points away.
	if c > 0 && b > 0 {
		return 0, false
	}

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	t := -b - math.Sqrt(disc)
	if t < 0 {
		// Ray starts inside the sphere.
		t = 0
	}

	return t, true
}

func rayPlane(origin, dir mgl64.Vec3, plane *collider.Plane, inflate float64) (float64, mgl64.Vec3, bool) {
	n := plane.Normal
	side := origin.Dot(n) - plane.Distance

	// A swept sphere touches the plane one radius early, on whichever side it
	// starts from.
	target := plane.Distance + inflate
	normal := n
	if side < 0 {
		target = plane.Distance - inflate
		normal = n.Mul(-1)
	}

	if math.Abs(side) <= inflate {
		return 0, normal, true
	}

	denom := n.Dot(dir)
	if math.Abs(denom) < degenerateDistance {
		return 0, mgl64.Vec3{}, false
	}

	t := (target - origin.Dot(n)) / denom
	if t < 0 {
		return 0, mgl64.Vec3{}, false
	}

	return t, normal, true
}
