package manifold

import "github.com/BltuoBaYe/manifold/collider"

// Source is the physics backend the tracker consumes. The backend is a black
// box: broadphase, narrowphase and integration happen behind this interface,
// and contact reports carry no identity of their own across frames.
type Source interface {
	// Step advances the backend by dt, subdividing into at most maxSubSteps
	// slices of fixedTimeStep. Backends without a dynamics world treat Step
	// as a no-op and return nil.
	Step(dt float64, maxSubSteps int, fixedTimeStep float64) error

	// ContactsWith reports every raw contact currently touching obj, filtered
	// by obj's collision group and mask. Implementations must suppress
	// contacts between two static objects and skip disabled objects on
	// either side.
	ContactsWith(obj *collider.Object, fn func(ContactPoint))
}
