package collider

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is the geometry an object presents to the backend.
type Shape interface {
	// ComputeAABB calculates the world-space axis-aligned bounding box for
	// the shape centered at the given position
	ComputeAABB(position mgl64.Vec3) AABB
}

// Sphere is a ball of the given radius centered on the object position.
type Sphere struct {
	Radius float64
}

func (s *Sphere) ComputeAABB(position mgl64.Vec3) AABB {
	extent := mgl64.Vec3{s.Radius, s.Radius, s.Radius}

	return AABB{
		Min: position.Sub(extent),
		Max: position.Add(extent),
	}
}

// Plane is the infinite half-space boundary satisfying Normal·x = Distance.
// Planes are always static and are never inserted into the broadphase grid.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

func (p *Plane) ComputeAABB(position mgl64.Vec3) AABB {
	inf := math.Inf(1)

	return AABB{
		Min: mgl64.Vec3{-inf, -inf, -inf},
		Max: mgl64.Vec3{inf, inf, inf},
	}
}
