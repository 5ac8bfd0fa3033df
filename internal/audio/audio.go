package audio

import (
	"math"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Listener is the ear position and orientation, usually the camera.
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// NewListener normalizes forward and derives right from up.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	if fwdLen := rl.Vector3Length(forward); fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		l.Forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}

	// Looking down -Z with +Y up, forward x up is +X
	right := rl.Vector3CrossProduct(l.Forward, up)
	if rightLen := rl.Vector3Length(right); rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		l.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	return l
}

// Spatialize returns the gain in [0, 1] and pan in [-1, 1] for a source at
// pos. Gain falls off linearly to zero at maxDistance; sources behind the
// listener are slightly quieter.
func Spatialize(l Listener, pos rl.Vector3, maxDistance float32) (gain, pan float64) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)
	if distance >= maxDistance {
		return 0, 0
	}
	gain = float64(1.0 - distance/maxDistance)
	if distance <= 0.001 {
		return gain, 0
	}

	direction := rl.Vector3Scale(toSource, 1.0/distance)
	pan = math.Max(-1, math.Min(1, float64(rl.Vector3DotProduct(direction, l.Right))))

	if frontDot := float64(rl.Vector3DotProduct(direction, l.Forward)); frontDot < 0 {
		gain *= 1 - 0.3*math.Abs(frontDot)
	}
	return gain, pan
}

// Output plays finished streamers.
type Output interface {
	Play(s beep.Streamer)
}

// Manager plays interaction cues relative to a listener.
type Manager struct {
	mu       sync.Mutex
	out      Output
	listener Listener

	Volume      float64
	MaxDistance float32
	Muted       bool
}

func NewManager(out Output) *Manager {
	return &Manager{
		out:         out,
		listener:    NewListener(rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{Y: 1}),
		Volume:      0.6,
		MaxDistance: 30,
	}
}

func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = NewListener(pos, forward, up)
}

func (m *Manager) Listener() Listener {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listener
}

// Play plays cue without spatialization.
func (m *Manager) Play(cue Cue) {
	m.play(cue, 1, 0)
}

// PlayAt plays cue as if emitted at pos.
func (m *Manager) PlayAt(cue Cue, pos rl.Vector3) {
	m.mu.Lock()
	gain, pan := Spatialize(m.listener, pos, m.MaxDistance)
	m.mu.Unlock()
	m.play(cue, gain, pan)
}

func (m *Manager) play(cue Cue, gain, pan float64) {
	if m == nil || m.out == nil || m.Muted {
		return
	}
	gain *= m.Volume
	if gain <= 0 {
		return
	}
	s := CueStreamer(cue, sampleRate)
	if s == nil {
		return
	}
	m.out.Play(&effects.Pan{Streamer: newVolume(s, gain), Pan: pan})
}

// newVolume maps a linear gain onto effects.Volume, which is exponential.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
