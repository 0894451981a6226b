package physics

const (
	DefaultRadius         = 0.3
	DefaultStandingHeight = 1.8

	// GroundProbeDistance is how far below the feet the ground check reaches.
	GroundProbeDistance = 0.05
	// GroundProbeInset shrinks the probe footprint so a wall touching the
	// capsule side does not count as ground.
	GroundProbeInset = 0.02

	CollisionAxisTolerance = 1e-9
)
