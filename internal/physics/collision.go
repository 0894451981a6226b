package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BlockStore answers whether the unit voxel at (x, y, z) blocks movement.
type BlockStore interface {
	IsSolid(x, y, z int) bool
}

type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// CapsuleAABB returns the box enclosing a capsule whose feet rest at pos.
func CapsuleAABB(pos mgl64.Vec3, radius, height float64) AABB {
	return AABB{
		Min: mgl64.Vec3{pos.X() - radius, pos.Y(), pos.Z() - radius},
		Max: mgl64.Vec3{pos.X() + radius, pos.Y() + height, pos.Z() + radius},
	}
}

// Translate returns the box moved by d.
func (b AABB) Translate(d mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

func (b AABB) Intersects(o AABB) bool {
	return b.Min.X() < o.Max.X() && b.Max.X() > o.Min.X() &&
		b.Min.Y() < o.Max.Y() && b.Max.Y() > o.Min.Y() &&
		b.Min.Z() < o.Max.Z() && b.Max.Z() > o.Min.Z()
}

func CollidesWithBlock(box AABB, blockStore BlockStore) bool {
	if blockStore == nil {
		return false
	}
	minX, maxX := floorForMin(box.Min.X()), floorForMax(box.Max.X())
	minY, maxY := floorForMin(box.Min.Y()), floorForMax(box.Max.Y())
	minZ, maxZ := floorForMin(box.Min.Z()), floorForMax(box.Max.Z())

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				if !blockStore.IsSolid(x, y, z) {
					continue
				}
				if box.Intersects(blockAABB(x, y, z)) {
					return true
				}
			}
		}
	}
	return false
}

// sweepAxis returns how far box may travel along axis (0=X, 1=Y, 2=Z)
// toward delta before touching a solid voxel.
func sweepAxis(box AABB, axis int, delta float64, blockStore BlockStore) float64 {
	if blockStore == nil || nearlyZero(delta) {
		return delta
	}
	a, b := otherAxes(axis)
	minA, maxA := floorForMin(box.Min[a]), floorForMax(box.Max[a])
	minB, maxB := floorForMin(box.Min[b]), floorForMax(box.Max[b])

	solidAt := func(along, i, j int) bool {
		var cell [3]int
		cell[axis], cell[a], cell[b] = along, i, j
		return blockStore.IsSolid(cell[0], cell[1], cell[2])
	}

	allowed := delta
	if delta > 0 {
		start := int(math.Ceil(box.Max[axis] - CollisionAxisTolerance))
		end := int(math.Floor(box.Max[axis] + delta))
		for c := start; c <= end; c++ {
			for i := minA; i <= maxA; i++ {
				for j := minB; j <= maxB; j++ {
					if solidAt(c, i, j) {
						allowed = math.Min(allowed, float64(c)-box.Max[axis])
					}
				}
			}
		}
		return math.Max(allowed, 0)
	}

	start := int(math.Floor(box.Min[axis]+CollisionAxisTolerance)) - 1
	end := int(math.Floor(box.Min[axis] + delta))
	for c := start; c >= end; c-- {
		for i := minA; i <= maxA; i++ {
			for j := minB; j <= maxB; j++ {
				if solidAt(c, i, j) {
					allowed = math.Max(allowed, float64(c+1)-box.Min[axis])
				}
			}
		}
	}
	return math.Min(allowed, 0)
}

func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func blockAABB(x, y, z int) AABB {
	return AABB{
		Min: mgl64.Vec3{float64(x), float64(y), float64(z)},
		Max: mgl64.Vec3{float64(x + 1), float64(y + 1), float64(z + 1)},
	}
}

func floorForMin(v float64) int {
	return int(math.Floor(v + CollisionAxisTolerance))
}

func floorForMax(v float64) int {
	return int(math.Floor(v - CollisionAxisTolerance))
}

func nearlyZero(v float64) bool {
	return math.Abs(v) <= CollisionAxisTolerance
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= CollisionAxisTolerance
}
