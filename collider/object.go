package collider

import "github.com/go-gl/mathgl/mgl64"

// BodyType discriminates how an object participates in the simulation
type BodyType int

const (
	// BodyTypeDynamic objects move and generate contacts against anything
	// their filter allows
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic objects never move; contacts between two static objects
	// are suppressed at the source
	BodyTypeStatic
)

const (
	DefaultGroup uint32 = 1
	DefaultMask  uint32 = ^uint32(0)
)

// Object is one collision participant. It carries the spatial state the
// backend needs to generate contacts and the filter state the tracking layer
// relies on. Objects outlive the collision pairs they take part in.
type Object struct {
	Id any

	Position mgl64.Vec3
	Velocity mgl64.Vec3

	Shape    Shape
	BodyType BodyType

	// Enabled objects take part in contact generation. Disabled objects are
	// skipped on both sides of every query.
	Enabled bool

	// Group is the collision category bit set of this object; Mask selects
	// which categories it collides with.
	Group uint32
	Mask  uint32

	// SlimContacts selects the append-only contact query mode for this
	// object: no deduplication, no cross-frame tracking, the result list is
	// rebuilt on every query. An object must not switch modes between frames.
	SlimContacts bool

	aabb AABB
}

// NewObject creates an enabled object with default filters at the given position.
func NewObject(position mgl64.Vec3, shape Shape, bodyType BodyType) *Object {
	obj := &Object{
		Position: position,
		Shape:    shape,
		BodyType: bodyType,
		Enabled:  true,
		Group:    DefaultGroup,
		Mask:     DefaultMask,
	}
	obj.RefreshAABB()

	return obj
}

func (o *Object) Static() bool {
	return o.BodyType == BodyTypeStatic
}

// RefreshAABB recomputes the cached bounds from the current position.
func (o *Object) RefreshAABB() {
	o.aabb = o.Shape.ComputeAABB(o.Position)
}

func (o *Object) AABB() AABB {
	return o.aabb
}

// CanCollideWith reports whether the group/mask filters of both objects allow
// a contact. The test is symmetric: each side's group must be selected by the
// other side's mask.
func (o *Object) CanCollideWith(other *Object) bool {
	return o.Group&other.Mask != 0 && other.Group&o.Mask != 0
}
