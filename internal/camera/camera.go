package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowCamera looks down at a target from a fixed angle, easing toward it
// as it moves.
type FollowCamera struct {
	Position rl.Vector3
	Target   rl.Vector3

	Distance  float32
	Yaw       float32 // degrees around Y
	Pitch     float32 // degrees above the ground plane
	Smoothing float32 // 1/s, 0 snaps
	Fovy      float32
}

func New(target rl.Vector3) *FollowCamera {
	c := &FollowCamera{
		Target:    target,
		Distance:  14.0,
		Yaw:       90.0,
		Pitch:     55.0,
		Smoothing: 8.0,
		Fovy:      45,
	}
	c.Position = c.desiredPosition(target)
	return c
}

// Update moves the camera toward its orbit position around target.
func (c *FollowCamera) Update(target rl.Vector3, deltaTime float32) {
	t := float32(1)
	if c.Smoothing > 0 {
		// Frame-rate independent exponential ease
		t = 1 - float32(math.Exp(float64(-c.Smoothing*deltaTime)))
	}
	c.Target = rl.Vector3Lerp(c.Target, target, t)
	c.Position = rl.Vector3Lerp(c.Position, c.desiredPosition(target), t)
}

// Offset is the vector from the target to the camera.
func (c *FollowCamera) Offset() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	horizontal := math.Cos(pitchRad) * float64(c.Distance)
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * horizontal),
		Y: float32(math.Sin(pitchRad) * float64(c.Distance)),
		Z: float32(math.Sin(yawRad) * horizontal),
	}
}

func (c *FollowCamera) desiredPosition(target rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(target, c.Offset())
}

func (c *FollowCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
