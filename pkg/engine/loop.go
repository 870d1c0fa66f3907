// pkg/engine/loop.go
package engine

import "time"

// Clock reports the current wall-clock time
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time { return time.Now() }

// FrameScheduler arranges for frame to be called once at the next display
// refresh. The returned cancel func drops the pending call.
type FrameScheduler interface {
	Schedule(frame func()) (cancel func())
}

// PumpScheduler holds at most one pending frame until the front end calls
// Pump from its own refresh callback.
type PumpScheduler struct {
	pending func()
	gen     uint64
}

// NewPumpScheduler creates an idle scheduler
func NewPumpScheduler() *PumpScheduler {
	return &PumpScheduler{}
}

// Schedule replaces any pending frame with frame
func (s *PumpScheduler) Schedule(frame func()) func() {
	s.gen++
	gen := s.gen
	s.pending = frame
	return func() {
		if s.gen == gen {
			s.pending = nil
		}
	}
}

// Pump runs the pending frame, if any, and reports whether one ran
func (s *PumpScheduler) Pump() bool {
	frame := s.pending
	if frame == nil {
		return false
	}
	s.pending = nil
	frame()
	return true
}

// Pending reports whether a frame is waiting
func (s *PumpScheduler) Pending() bool {
	return s.pending != nil
}

// Loop reschedules itself every frame and hands step the elapsed seconds
// since the previous frame. The first frame after Start reports zero.
// A Loop is not safe for concurrent use.
type Loop struct {
	scheduler FrameScheduler
	clock     Clock
	step      func(dt float64)
	cancel    func()
	last      time.Time
	first     bool
	running   bool
	gen       uint64
}

// NewLoop creates a stopped loop. A nil clock uses SystemClock.
func NewLoop(scheduler FrameScheduler, clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		scheduler: scheduler,
		clock:     clock,
	}
}

// Start begins calling step once per frame. Starting a running loop does nothing.
func (l *Loop) Start(step func(dt float64)) {
	if l.running {
		return
	}
	l.step = step
	l.running = true
	l.first = true
	l.gen++
	l.schedule(l.gen)
}

// Stop cancels all future frames until the next Start
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Running reports whether frames are being scheduled
func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) schedule(gen uint64) {
	l.cancel = l.scheduler.Schedule(func() { l.frame(gen) })
}

func (l *Loop) frame(gen uint64) {
	if !l.running || gen != l.gen {
		return
	}

	now := l.clock.Now()
	var dt float64
	if !l.first {
		dt = now.Sub(l.last).Seconds()
	}
	l.first = false
	l.last = now

	l.step(dt)

	// step may have stopped, or stopped and restarted, the loop
	if l.running && gen == l.gen {
		l.schedule(gen)
	}
}
