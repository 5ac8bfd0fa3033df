package physics

import (
	"math"

	"proximity/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180

	// Same order as GameObject.WorldPosition: X, Y, Z
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixRotateX(float32(rx)), rl.MatrixRotateY(float32(ry))), rl.MatrixRotateZ(float32(rz)))

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes:     axes,
	}
}

// NewOBBFromCollider builds the world-space OBB of a box collider.
func NewOBBFromCollider(box *components.BoxCollider) OBB {
	return NewOBB(box.GetCenter(), box.GetWorldSize(), box.GetWorldRotation())
}

// BoundingRadius is the radius of the sphere enclosing the box.
func (o OBB) BoundingRadius() float32 {
	return rl.Vector3Length(o.HalfSize)
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	closest := ClosestPointOnOBB(o, center)
	return rl.Vector3DistanceSqr(closest, center) <= radius*radius
}

// ClosestPointOnOBB returns the point of the OBB closest to point
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	// Into local space
	local := rl.Vector3Subtract(point, o.Center)
	localX := rl.Vector3DotProduct(local, o.Axes[0])
	localY := rl.Vector3DotProduct(local, o.Axes[1])
	localZ := rl.Vector3DotProduct(local, o.Axes[2])

	closestX := clampf(localX, -o.HalfSize.X, o.HalfSize.X)
	closestY := clampf(localY, -o.HalfSize.Y, o.HalfSize.Y)
	closestZ := clampf(localZ, -o.HalfSize.Z, o.HalfSize.Z)

	// Back to world space
	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], closestX))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], closestY))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], closestZ))

	return result
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
