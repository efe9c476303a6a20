package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

func toMgl(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// rotationMatrix converts an orientation to a 3x3 rotation matrix
func rotationMatrix(q rl.Quaternion) mgl32.Mat3 {
	mq := mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
	return mq.Normalize().Mat4().Mat3()
}

// mulVec multiplies a 3x3 matrix by a raylib vector
func mulVec(m mgl32.Mat3, v rl.Vector3) rl.Vector3 {
	return fromMgl(m.Mul3x1(toMgl(v)))
}

// integrateOrientation advances q by angular velocity w over h seconds
func integrateOrientation(q rl.Quaternion, w rl.Vector3, h float32) rl.Quaternion {
	spin := rl.QuaternionMultiply(rl.Quaternion{X: w.X, Y: w.Y, Z: w.Z, W: 0}, q)
	q.X += 0.5 * h * spin.X
	q.Y += 0.5 * h * spin.Y
	q.Z += 0.5 * h * spin.Z
	q.W += 0.5 * h * spin.W
	return rl.QuaternionNormalize(q)
}

// tangentBasis returns two unit vectors orthogonal to n and to each other
func tangentBasis(n rl.Vector3) (rl.Vector3, rl.Vector3) {
	var t1 rl.Vector3
	if absf(n.X) >= 0.57735 {
		t1 = rl.Vector3{X: n.Y, Y: -n.X, Z: 0}
	} else {
		t1 = rl.Vector3{X: 0, Y: n.Z, Z: -n.Y}
	}
	t1 = rl.Vector3Normalize(t1)
	t2 := rl.Vector3CrossProduct(n, t1)
	return t1, t2
}

// retain converts a per-second loss fraction into the factor kept over h seconds
func retain(lossPerSecond, h float32) float32 {
	if lossPerSecond <= 0 {
		return 1
	}
	if lossPerSecond >= 1 {
		return 0
	}
	return float32(math.Pow(float64(1-lossPerSecond), float64(h)))
}

func mixFriction(a, b float32) float32 {
	return float32(math.Sqrt(float64(a * b)))
}

func mixBounce(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
