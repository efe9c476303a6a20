package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Body     *Body
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast checks for intersection with all bodies and returns the closest hit.
// ignore is skipped, usually the shooter's own body.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *Body) (RaycastHit, bool) {
	if w.closed || maxDistance <= 0 || rl.Vector3LengthSqr(direction) < 1e-12 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, b := range w.bodies {
		if b == ignore {
			continue
		}
		var info RaycastHit
		var ok bool
		switch b.Shape.Kind {
		case ShapeBox:
			info, ok = raycastOBB(origin, direction, b.OBB(), maxDistance)
		case ShapeSphere:
			info, ok = raycastSphere(origin, direction, b.Position, b.Shape.Radius, maxDistance)
		}
		if ok && info.Distance <= closestHit.Distance {
			closestHit = info
			closestHit.Body = b
			hit = true
		}
	}

	return closestHit, hit
}

// raycastOBB runs the slab test in the box's local frame
func raycastOBB(origin, direction rl.Vector3, o OBB, maxDistance float32) (RaycastHit, bool) {
	rel := rl.Vector3Subtract(origin, o.Center)

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	enterAxis, exitAxis := -1, -1
	var enterSign, exitSign float32

	for i := 0; i < 3; i++ {
		axis := o.Axes[i]
		lo := rl.Vector3DotProduct(rel, axis)
		ld := rl.Vector3DotProduct(direction, axis)
		ext := o.extent(i)

		if absf(ld) < 1e-8 {
			// Parallel to this slab: must already be inside it
			if lo < -ext || lo > ext {
				return RaycastHit{}, false
			}
			continue
		}

		t1 := (-ext - lo) / ld
		t2 := (ext - lo) / ld
		sign := float32(-1) // entering through the negative face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			enterAxis, enterSign = i, sign
		}
		if t2 < tmax {
			tmax = t2
			exitAxis, exitSign = i, -sign
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 {
		return RaycastHit{}, false
	}

	t, axis, sign := tmin, enterAxis, enterSign
	if t < 0 {
		// Origin inside the box: report the exit face
		t, axis, sign = tmax, exitAxis, exitSign
	}
	if t > maxDistance || axis < 0 {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Scale(o.Axes[axis], sign)
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
