package collider

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewObject(t *testing.T) {
	obj := NewObject(mgl64.Vec3{1, 2, 3}, &Sphere{Radius: 0.5}, BodyTypeDynamic)

	if !obj.Enabled {
		t.Error("Expected new objects to start enabled")
	}
	if obj.Group != DefaultGroup || obj.Mask != DefaultMask {
		t.Errorf("Expected default filters, got group=%d mask=%d", obj.Group, obj.Mask)
	}
	if obj.Static() {
		t.Error("Expected a dynamic object")
	}

	// The constructor caches bounds right away.
	aabb := obj.AABB()
	if aabb.Min != (mgl64.Vec3{0.5, 1.5, 2.5}) || aabb.Max != (mgl64.Vec3{1.5, 2.5, 3.5}) {
		t.Errorf("Expected bounds around the spawn position, got %+v", aabb)
	}
}

func TestObject_RefreshAABB(t *testing.T) {
	obj := NewObject(mgl64.Vec3{}, &Sphere{Radius: 1}, BodyTypeDynamic)

	obj.Position = mgl64.Vec3{10, 0, 0}
	if obj.AABB().Max.X() != 1 {
		t.Error("Expected cached bounds to lag until refresh")
	}

	obj.RefreshAABB()
	if obj.AABB().Max.X() != 11 {
		t.Errorf("Expected refreshed bounds at the new position, got %+v", obj.AABB())
	}
}

func TestObject_CanCollideWith(t *testing.T) {
	const (
		groundLayer uint32 = 1 << 0
		playerLayer uint32 = 1 << 1
		debrisLayer uint32 = 1 << 2
	)

	ground := NewObject(mgl64.Vec3{}, &Sphere{Radius: 1}, BodyTypeStatic)
	ground.Group = groundLayer

	player := NewObject(mgl64.Vec3{}, &Sphere{Radius: 1}, BodyTypeDynamic)
	player.Group = playerLayer
	player.Mask = groundLayer

	debris := NewObject(mgl64.Vec3{}, &Sphere{Radius: 1}, BodyTypeDynamic)
	debris.Group = debrisLayer
	debris.Mask = groundLayer

	if !player.CanCollideWith(ground) || !ground.CanCollideWith(player) {
		t.Error("Expected player and ground to collide symmetrically")
	}
	if player.CanCollideWith(debris) || debris.CanCollideWith(player) {
		t.Error("Expected player and debris filtered out in both directions")
	}

	// One-sided acceptance is not enough.
	debris.Mask = DefaultMask
	if debris.CanCollideWith(player) {
		t.Error("Expected the filter to require both masks to accept")
	}
}

func TestSphere_ComputeAABB(t *testing.T) {
	s := &Sphere{Radius: 2}
	aabb := s.ComputeAABB(mgl64.Vec3{0, 5, 0})

	if aabb.Min != (mgl64.Vec3{-2, 3, -2}) || aabb.Max != (mgl64.Vec3{2, 7, 2}) {
		t.Errorf("Expected symmetric bounds around the center, got %+v", aabb)
	}
}

func TestPlane_ComputeAABBIsUnbounded(t *testing.T) {
	p := &Plane{Normal: mgl64.Vec3{0, 1, 0}, Distance: 0}
	aabb := p.ComputeAABB(mgl64.Vec3{})

	for axis := 0; axis < 3; axis++ {
		if !math.IsInf(aabb.Min[axis], -1) || !math.IsInf(aabb.Max[axis], 1) {
			t.Fatalf("Expected unbounded extent on axis %d, got %+v", axis, aabb)
		}
	}
}

func TestAABB_ContainsPoint(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}

	if !a.ContainsPoint(mgl64.Vec3{0, 0, 0}) {
		t.Error("Expected the center to be inside")
	}
	if !a.ContainsPoint(mgl64.Vec3{1, 1, 1}) {
		t.Error("Expected the boundary to be inside")
	}
	if a.ContainsPoint(mgl64.Vec3{0, 1.01, 0}) {
		t.Error("Expected a point past the face to be outside")
	}
}

func TestAABB_Overlaps(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}
	b := AABB{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{3, 3, 3}}
	c := AABB{Min: mgl64.Vec3{1, 1, 5}, Max: mgl64.Vec3{3, 3, 6}}

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("Expected intersecting boxes to overlap")
	}
	if a.Overlaps(c) {
		t.Error("Expected boxes separated on one axis not to overlap")
	}
}

func TestAABB_Expanded(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	grown := a.Expanded(0.5)

	if grown.Min != (mgl64.Vec3{-0.5, -0.5, -0.5}) || grown.Max != (mgl64.Vec3{1.5, 1.5, 1.5}) {
		t.Errorf("Expected every side grown by 0.5, got %+v", grown)
	}
}
