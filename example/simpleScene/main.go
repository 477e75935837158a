package main

import (
	"fmt"

	"github.com/BltuoBaYe/manifold"
	"github.com/BltuoBaYe/manifold/collider"
	"github.com/BltuoBaYe/manifold/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Drops a ball onto the ground plane and prints the notification stream the
// tracker produces while they touch.
func main() {
	cfg := manifold.DefaultConfig()

	w := world.New(cfg, world.ModeDynamics)
	tracker := manifold.NewTracker(w, cfg)

	ground := collider.NewObject(
		mgl64.Vec3{},
		&collider.Plane{Normal: mgl64.Vec3{0, 1, 0}, Distance: 0},
		collider.BodyTypeStatic,
	)
	ground.Id = "ground"

	ball := collider.NewObject(
		mgl64.Vec3{0, 3, 0},
		&collider.Sphere{Radius: 1},
		collider.BodyTypeDynamic,
	)
	ball.Id = "ball"

	w.AddBody(ground)
	w.AddBody(ball)
	tracker.Track(ground)
	tracker.Track(ball)

	events := tracker.Events(ball)

	const dt = 1.0 / 60.0
	for tick := 0; tick < 90; tick++ {
		events.CollisionBegan.Subscribe()
		events.ContactBegan.Subscribe()
		events.ContactChanged.Subscribe()
		events.CollisionEnded.Subscribe()

		if err := tracker.Step(dt); err != nil {
			fmt.Println("step failed:", err)
			return
		}

		if c, ok := events.CollisionBegan.Receive(); ok {
			fmt.Printf("tick %3d: %v started touching %v\n", tick, c.ColliderA.Id, c.ColliderB.Id)

			// There is no contact solver here; freeze the ball so the pair
			// persists instead of tunneling through the plane.
			ball.Velocity = mgl64.Vec3{}
		}
		if p, ok := events.ContactBegan.Receive(); ok {
			fmt.Printf("tick %3d: contact at %.3v, separation %.4f\n", tick, p.PositionOnA, p.Distance)
		}
		if p, ok := events.ContactChanged.Receive(); ok {
			fmt.Printf("tick %3d: contact update, separation %.4f\n", tick, p.Distance)
		}
	}

	for _, p := range tracker.ContactTest(ball) {
		fmt.Printf("final contact: %v against %v, separation %.4f\n", p.ColliderA.Id, p.ColliderB.Id, p.Distance)
	}
}
