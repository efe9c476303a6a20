package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clip distances used for drawing and culling
const (
	viewNear float32 = 0.05
	viewFar  float32 = 500.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// NewFrustum extracts the frustum planes of a camera from its view-projection
// matrix using the Gribb/Hartmann method
func NewFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, near, far)
	}

	// VP = P * V, rows read out of raylib's column-major layout
	vp := rl.MatrixMultiply(view, proj)
	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for i := 0; i < 3; i++ {
		f.planes[2*i] = planeFrom(rows[3], rows[i], 1)
		f.planes[2*i+1] = planeFrom(rows[3], rows[i], -1)
	}
	return f
}

// planeFrom builds the normalized plane row4 + sign*row
func planeFrom(w, r [4]float32, sign float32) Plane {
	p := Plane{
		normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		distance: w[3] + sign*r[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	p.normal = rl.Vector3Scale(p.normal, 1.0/length)
	p.distance /= length
	return p
}

// ContainsSphere reports whether a sphere is inside or touching the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		if rl.Vector3DotProduct(f.planes[i].normal, center)+f.planes[i].distance < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
