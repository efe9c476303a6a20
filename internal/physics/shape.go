package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	}
	return "unknown"
}

// Shape is the collision geometry of a body, centered on the body position
type Shape struct {
	Kind        ShapeKind
	HalfExtents rl.Vector3 // boxes
	Radius      float32    // spheres
}

// Box creates a box shape from half extents
func Box(halfExtents rl.Vector3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

// Sphere creates a sphere shape
func Sphere(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

func (s Shape) valid() bool {
	switch s.Kind {
	case ShapeBox:
		return s.HalfExtents.X > 0 && s.HalfExtents.Y > 0 && s.HalfExtents.Z > 0
	case ShapeSphere:
		return s.Radius > 0
	}
	return false
}

// BoundingRadius returns the radius of a sphere enclosing the shape at any orientation
func (s Shape) BoundingRadius() float32 {
	if s.Kind == ShapeSphere {
		return s.Radius
	}
	return rl.Vector3Length(s.HalfExtents)
}

// Inertia returns the local inertia tensor for a solid shape of the given mass
func (s Shape) Inertia(mass float32) mgl32.Mat3 {
	switch s.Kind {
	case ShapeSphere:
		i := 0.4 * mass * s.Radius * s.Radius
		return mgl32.Diag3(mgl32.Vec3{i, i, i})
	default:
		// Solid cuboid with full extents 2h: I = m/3 * (hy² + hz²) etc.
		h := s.HalfExtents
		x2, y2, z2 := h.X*h.X, h.Y*h.Y, h.Z*h.Z
		return mgl32.Diag3(mgl32.Vec3{
			mass / 3 * (y2 + z2),
			mass / 3 * (x2 + z2),
			mass / 3 * (x2 + y2),
		})
	}
}
