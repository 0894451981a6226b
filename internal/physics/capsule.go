package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Collision reports which sides of the capsule touched geometry during a Move.
type Collision uint8

const (
	CollidedSides Collision = 1 << iota
	CollidedAbove
	CollidedBelow
)

func (c Collision) Has(flag Collision) bool {
	return c&flag != 0
}

// Capsule is a character body resolved against a voxel world. The capsule is
// approximated by its bounding box: Radius is the half width on X and Z,
// Height runs upward from the feet at Position.
type Capsule struct {
	Radius float64

	position   mgl64.Vec3
	height     float64
	yaw        float64
	blockStore BlockStore
}

func NewCapsule(pos mgl64.Vec3, radius, height float64, blockStore BlockStore) *Capsule {
	if radius <= 0 {
		radius = DefaultRadius
	}
	if height <= 0 {
		height = DefaultStandingHeight
	}
	return &Capsule{
		Radius:     radius,
		position:   pos,
		height:     height,
		blockStore: blockStore,
	}
}

// Move displaces the capsule, sliding along any voxel faces it meets. The
// vertical axis is resolved first so a grounded capsule slides over the floor.
func (c *Capsule) Move(displacement mgl64.Vec3) Collision {
	var flags Collision
	box := c.aabb()
	for _, axis := range [3]int{1, 0, 2} {
		want := displacement[axis]
		got := sweepAxis(box, axis, want, c.blockStore)
		if !nearlyEqual(got, want) {
			switch {
			case axis != 1:
				flags |= CollidedSides
			case want > 0:
				flags |= CollidedAbove
			default:
				flags |= CollidedBelow
			}
		}
		var step mgl64.Vec3
		step[axis] = got
		box = box.Translate(step)
		c.position[axis] += got
	}
	return flags
}

// Grounded probes a thin slab under the feet, inset from the capsule edges.
func (c *Capsule) Grounded() bool {
	if c.blockStore == nil {
		return false
	}
	r := c.Radius - GroundProbeInset
	probe := AABB{
		Min: mgl64.Vec3{c.position.X() - r, c.position.Y() - GroundProbeDistance, c.position.Z() - r},
		Max: mgl64.Vec3{c.position.X() + r, c.position.Y(), c.position.Z() + r},
	}
	return CollidesWithBlock(probe, c.blockStore)
}

func (c *Capsule) Position() mgl64.Vec3 {
	return c.position
}

func (c *Capsule) SetPosition(pos mgl64.Vec3) {
	c.position = pos
}

func (c *Capsule) Height() float64 {
	return c.height
}

// SetHeight resizes the capsule in place, keeping the feet where they are.
func (c *Capsule) SetHeight(h float64) {
	if h > 0 {
		c.height = h
	}
}

// CanResize reports whether the capsule fits at height h. Shrinking always fits.
func (c *Capsule) CanResize(h float64) bool {
	if h <= c.height {
		return true
	}
	head := AABB{
		Min: mgl64.Vec3{c.position.X() - c.Radius, c.position.Y() + c.height, c.position.Z() - c.Radius},
		Max: mgl64.Vec3{c.position.X() + c.Radius, c.position.Y() + h, c.position.Z() + c.Radius},
	}
	return !CollidesWithBlock(head, c.blockStore)
}

// Rotate turns the body about the vertical axis by deg degrees. Yaw is not wrapped.
func (c *Capsule) Rotate(deg float64) {
	c.yaw += deg
}

func (c *Capsule) Yaw() float64 {
	return c.yaw
}

// Orientation is the body rotation about +Y. Forward is +Z at zero yaw.
func (c *Capsule) Orientation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(c.yaw), mgl64.Vec3{0, 1, 0})
}

func (c *Capsule) aabb() AABB {
	return CapsuleAABB(c.position, c.Radius, c.height)
}

// HorizontalLen is the length of v projected on the ground plane.
func HorizontalLen(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}
