package interaction

import "time"

// Ticker fires a callback on a fixed interval from frame deltas. It runs on
// the caller's goroutine, fires at most once per Advance, and drops backlog
// after a long frame rather than firing in a burst. The first fire happens
// one full interval after Start.
type Ticker struct {
	interval time.Duration
	elapsed  time.Duration
	running  bool
	fn       func()
}

func NewTicker(interval time.Duration, fn func()) *Ticker {
	return &Ticker{interval: interval, fn: fn}
}

func (t *Ticker) Start() {
	t.elapsed = 0
	t.running = true
}

// Stop cancels future fires. Safe to call more than once.
func (t *Ticker) Stop() {
	t.running = false
}

func (t *Ticker) Running() bool {
	return t.running
}

func (t *Ticker) SetInterval(interval time.Duration) {
	t.interval = interval
}

// Advance adds dt and fires if an interval has elapsed. Reports whether it fired.
func (t *Ticker) Advance(dt time.Duration) bool {
	if !t.running || t.interval <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	t.fn()
	return true
}

// FrameDuration converts a frame delta in seconds to a Duration.
func FrameDuration(deltaTime float32) time.Duration {
	return time.Duration(float64(deltaTime) * float64(time.Second))
}
