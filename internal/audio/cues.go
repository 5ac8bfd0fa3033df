package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a synthesized interaction sound.
type Cue int

const (
	// CueFocus plays when a new interaction target comes into range.
	CueFocus Cue = iota
	// CueInteract plays when the player uses the current target.
	CueInteract
	// CueDenied plays when there is nothing to interact with.
	CueDenied
)

var cueNames = map[Cue]string{
	CueFocus:    "focus",
	CueInteract: "interact",
	CueDenied:   "denied",
}

func (c Cue) String() string {
	return cueNames[c]
}

// CueStreamer builds a fresh streamer for cue, or nil for an unknown cue.
func CueStreamer(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueFocus:
		return tone(660, 60*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate)
	case CueInteract:
		// Rising two-note chime
		return beep.Seq(
			tone(880, 70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, rate),
			tone(1320, 110*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, rate),
		)
	case CueDenied:
		return tone(140, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, rate)
	}
	return nil
}

func tone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newSine(freq, duration, rate), duration, attack, release, rate)
}

type sine struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newSine(freq float64, duration time.Duration, rate beep.SampleRate) *sine {
	return &sine{freq: freq, duration: rate.N(duration), rate: rate}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// envelope applies a linear attack and release.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
