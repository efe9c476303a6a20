package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// contactTolerance lets resting vertices that sit exactly on a face still count
const contactTolerance = 0.01

// collide runs the narrow-phase for one pair. Contacts always report A and B in
// the order the normal expects: the normal points from B towards A.
func collide(a, b *Body) []Contact {
	switch {
	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeBox:
		return collideBoxBox(a, b)
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeBox:
		return collideSphereBox(a, b)
	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeSphere:
		return collideSphereBox(b, a)
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeSphere:
		return collideSphereSphere(a, b)
	}
	return nil
}

func collideBoxBox(a, b *Body) []Contact {
	obbA, obbB := a.OBB(), b.OBB()
	n, depth, ok := obbA.Penetration(obbB)
	if !ok {
		return nil
	}

	var contacts []Contact

	// Vertices of A buried in B
	topB := rl.Vector3DotProduct(obbB.Center, n) + obbB.project(n)
	for _, v := range corners(obbA) {
		if !expanded(obbB, contactTolerance).Contains(v) {
			continue
		}
		d := clampf(topB-rl.Vector3DotProduct(v, n), 0, depth)
		contacts = append(contacts, Contact{A: a, B: b, Point: v, Normal: n, Depth: d})
	}

	// Vertices of B buried in A
	bottomA := rl.Vector3DotProduct(obbA.Center, n) - obbA.project(n)
	for _, v := range corners(obbB) {
		if !expanded(obbA, contactTolerance).Contains(v) {
			continue
		}
		d := clampf(rl.Vector3DotProduct(v, n)-bottomA, 0, depth)
		contacts = append(contacts, Contact{A: a, B: b, Point: v, Normal: n, Depth: d})
	}

	if len(contacts) == 0 {
		// Edge-edge crossing: no vertex inside, use the midpoint of closest points
		pB := ClosestPointOnOBB(obbB, obbA.Center)
		pA := ClosestPointOnOBB(obbA, obbB.Center)
		mid := rl.Vector3Scale(rl.Vector3Add(pA, pB), 0.5)
		contacts = append(contacts, Contact{A: a, B: b, Point: mid, Normal: n, Depth: depth})
	}
	return contacts
}

func collideSphereBox(sphere, box *Body) []Contact {
	obb := box.OBB()
	center := sphere.Position
	r := sphere.Shape.Radius

	closest := ClosestPointOnOBB(obb, center)
	diff := rl.Vector3Subtract(center, closest)
	dist := rl.Vector3Length(diff)

	if dist > 0.0001 {
		if dist >= r {
			return nil
		}
		return []Contact{{
			A:      sphere,
			B:      box,
			Point:  closest,
			Normal: rl.Vector3Scale(diff, 1/dist),
			Depth:  r - dist,
		}}
	}

	// Center inside the box: push out through the nearest face
	local := rl.Vector3Subtract(center, obb.Center)
	best := float32(math.MaxFloat32)
	var normal rl.Vector3
	for i := 0; i < 3; i++ {
		d := rl.Vector3DotProduct(local, obb.Axes[i])
		gap := obb.extent(i) - absf(d)
		if gap < best {
			best = gap
			normal = obb.Axes[i]
			if d < 0 {
				normal = rl.Vector3Negate(normal)
			}
		}
	}
	return []Contact{{
		A:      sphere,
		B:      box,
		Point:  center,
		Normal: normal,
		Depth:  best + r,
	}}
}

func collideSphereSphere(a, b *Body) []Contact {
	diff := rl.Vector3Subtract(a.Position, b.Position)
	dist := rl.Vector3Length(diff)
	minDist := a.Shape.Radius + b.Shape.Radius
	if dist >= minDist {
		return nil
	}

	normal := rl.Vector3{Y: 1}
	if dist > 0.0001 {
		normal = rl.Vector3Scale(diff, 1/dist)
	}
	point := rl.Vector3Add(b.Position, rl.Vector3Scale(normal, b.Shape.Radius))
	return []Contact{{A: a, B: b, Point: point, Normal: normal, Depth: minDist - dist}}
}

// corners returns the eight vertices of an OBB
func corners(o OBB) [8]rl.Vector3 {
	var out [8]rl.Vector3
	i := 0
	for _, sx := range [2]float32{-1, 1} {
		for _, sy := range [2]float32{-1, 1} {
			for _, sz := range [2]float32{-1, 1} {
				p := o.Center
				p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[0], sx*o.HalfSize.X))
				p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[1], sy*o.HalfSize.Y))
				p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[2], sz*o.HalfSize.Z))
				out[i] = p
				i++
			}
		}
	}
	return out
}

func expanded(o OBB, margin float32) OBB {
	o.HalfSize = rl.Vector3{X: o.HalfSize.X + margin, Y: o.HalfSize.Y + margin, Z: o.HalfSize.Z + margin}
	return o
}
