// Package world is a reference backend for the manifold tracker: a
// collision-capable world with a hashed spatial grid broadphase, analytic
// sphere and plane contacts, and optional rudimentary dynamics. It implements
// manifold.Source.
package world

import (
	"errors"
	"math"

	"github.com/BltuoBaYe/manifold"
	"github.com/BltuoBaYe/manifold/collider"
	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects what Step does.
type Mode int

const (
	// ModeCollisionOnly performs overlap detection without dynamics; Step
	// refreshes bounds and returns without integrating anything.
	ModeCollisionOnly Mode = iota

	// ModeDynamics additionally integrates velocities and positions under
	// gravity.
	ModeDynamics
)

// ErrDynamicsRequired is returned by operations that need a dynamics-capable
// world when the world was built collision-only.
var ErrDynamicsRequired = errors.New("world: operation requires a dynamics-capable world")

type World struct {
	mode    Mode
	gravity mgl64.Vec3
	workers int

	bodies []*collider.Object
	// plane-shaped bodies have unbounded AABBs and bypass the grid
	planes []*collider.Object

	grid  *grid
	dirty bool
}

func New(cfg manifold.Config, mode Mode) *World {
	return &World{
		mode:    mode,
		gravity: cfg.GravityVec(),
		workers: max(1, cfg.Workers),
		grid:    newGrid(cfg.CellSize, cfg.Cells),
		dirty:   true,
	}
}

func (w *World) AddBody(obj *collider.Object) {
	if _, isPlane := obj.Shape.(*collider.Plane); isPlane {
		w.planes = append(w.planes, obj)
	} else {
		w.bodies = append(w.bodies, obj)
	}

	w.dirty = true
}

func (w *World) RemoveBody(obj *collider.Object) {
	remove := func(list []*collider.Object) []*collider.Object {
		for i, o := range list {
			if o == obj {
				return append(list[:i], list[i+1:]...)
			}
		}
		return list
	}

	w.bodies = remove(w.bodies)
	w.planes = remove(w.planes)
	w.dirty = true
}

// Step advances the world and implements the manifold.Source contract.
// Collision-only worlds have no dynamics to advance; the call refreshes
// bounds and succeeds silently.
func (w *World) Step(dt float64, maxSubSteps int, fixedTimeStep float64) error {
	if w.mode == ModeDynamics && dt > 0 {
		substeps, h := subdivide(dt, maxSubSteps, fixedTimeStep)
		for i := 0; i < substeps; i++ {
			w.integrate(h)
		}
	}

	w.refresh()

	return nil
}

// subdivide splits dt into equal slices no longer than fixedTimeStep, capped
// at maxSubSteps.
func subdivide(dt float64, maxSubSteps int, fixedTimeStep float64) (int, float64) {
	if fixedTimeStep <= 0 {
		return 1, dt
	}

	n := int(math.Ceil(dt / fixedTimeStep))
	if n < 1 {
		n = 1
	}
	if maxSubSteps > 0 && n > maxSubSteps {
		n = maxSubSteps
	}

	return n, dt / float64(n)
}

func (w *World) integrate(h float64) {
	fanOut(w.workers, w.bodies, func(obj *collider.Object) {
		if obj.Static() || !obj.Enabled {
			return
		}

		obj.Velocity = obj.Velocity.Add(w.gravity.Mul(h))
		obj.Position = obj.Position.Add(obj.Velocity.Mul(h))
	})
}

// refresh recomputes bounds and rebuilds the broadphase grid.
func (w *World) refresh() {
	fanOut(w.workers, w.bodies, func(obj *collider.Object) {
		obj.RefreshAABB()
	})

	w.grid.clear()
	for _, obj := range w.bodies {
		if obj.Enabled {
			w.grid.insert(obj)
		}
	}

	w.dirty = false
}

// ApplyImpulse adds an instantaneous velocity change to obj. It rejects the
// call on a collision-only world without mutating anything. Static objects
// ignore impulses.
func (w *World) ApplyImpulse(obj *collider.Object, dv mgl64.Vec3) error {
	if w.mode != ModeDynamics {
		return ErrDynamicsRequired
	}

	if !obj.Static() {
		obj.Velocity = obj.Velocity.Add(dv)
	}

	return nil
}

// ContactsWith reports every contact currently touching obj, filtered by
// obj's group and mask. Static-static contacts are suppressed here, at the
// source, and disabled objects never produce reports.
func (w *World) ContactsWith(obj *collider.Object, fn func(manifold.ContactPoint)) {
	if !obj.Enabled {
		return
	}
	if w.dirty {
		w.refresh()
	}

	if _, isPlane := obj.Shape.(*collider.Plane); isPlane {
		// A plane can touch anything; walk the finite bodies directly.
		for _, other := range w.bodies {
			w.emitContact(obj, other, fn)
		}
		return
	}

	w.grid.neighbors(obj, func(other *collider.Object) {
		w.emitContact(obj, other, fn)
	})

	for _, plane := range w.planes {
		w.emitContact(obj, plane, fn)
	}
}

func (w *World) emitContact(obj, other *collider.Object, fn func(manifold.ContactPoint)) {
	if other == obj || !other.Enabled {
		return
	}
	if obj.Static() && other.Static() {
		return
	}
	if !obj.CanCollideWith(other) {
		return
	}

	if p, ok := contact(obj, other); ok {
		fn(p)
	}
}
