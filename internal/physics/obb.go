package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, half extents, and orientation
func NewOBB(center, halfSize rl.Vector3, orientation rl.Quaternion) OBB {
	return OBB{
		Center:   center,
		HalfSize: halfSize,
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, orientation)),
			rl.Vector3Normalize(rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, orientation)),
			rl.Vector3Normalize(rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, orientation)),
		},
	}
}

func (o OBB) extent(i int) float32 {
	switch i {
	case 0:
		return o.HalfSize.X
	case 1:
		return o.HalfSize.Y
	}
	return o.HalfSize.Z
}

// project returns the half-length of the box projected onto axis
func (o OBB) project(axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(rl.Vector3DotProduct(o.Axes[2], axis))
}

// Penetration runs SAT over the 15 candidate axes and returns the axis of least
// overlap. The normal points from b towards a, so moving a by normal*depth
// separates the boxes.
func (a OBB) Penetration(b OBB) (normal rl.Vector3, depth float32, ok bool) {
	t := rl.Vector3Subtract(b.Center, a.Center)
	depth = float32(math.MaxFloat32)

	testAxis := func(axis rl.Vector3) bool {
		if rl.Vector3LengthSqr(axis) < 1e-8 {
			return true // parallel edges, not a separating candidate
		}
		axis = rl.Vector3Normalize(axis)
		dist := rl.Vector3DotProduct(t, axis)
		overlap := a.project(axis) + b.project(axis) - absf(dist)
		if overlap < 0 {
			return false
		}
		if overlap < depth {
			depth = overlap
			if dist < 0 {
				normal = axis
			} else {
				normal = rl.Vector3Negate(axis)
			}
		}
		return true
	}

	for i := 0; i < 3; i++ {
		if !testAxis(a.Axes[i]) {
			return rl.Vector3{}, 0, false
		}
	}
	for i := 0; i < 3; i++ {
		if !testAxis(b.Axes[i]) {
			return rl.Vector3{}, 0, false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !testAxis(rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])) {
				return rl.Vector3{}, 0, false
			}
		}
	}
	return normal, depth, true
}

// Contains reports whether a point lies inside the box
func (o OBB) Contains(p rl.Vector3) bool {
	local := rl.Vector3Subtract(p, o.Center)
	for i := 0; i < 3; i++ {
		if absf(rl.Vector3DotProduct(local, o.Axes[i])) > o.extent(i) {
			return false
		}
	}
	return true
}

// ClosestPointOnOBB returns the closest point on or inside the OBB to the given point
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(point, o.Center)
	result := o.Center
	for i := 0; i < 3; i++ {
		d := clampf(rl.Vector3DotProduct(local, o.Axes[i]), -o.extent(i), o.extent(i))
		result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[i], d))
	}
	return result
}
