package timing

import (
	"context"
	"time"
)

// Manual is a virtual timebase. Time only moves when Advance or Frame is
// called, which makes hold sequences reproducible in tests and headless runs.
type Manual struct {
	now       time.Time
	frameTime time.Duration
	seq       uint64
	timers    []*manualTimer
	frames    []*manualTimer
}

type manualTimer struct {
	due  time.Time
	seq  uint64
	fn   func()
	done bool
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// NewManual creates a virtual timebase starting at start.
func NewManual(start time.Time, frameRate int) *Manual {
	return &Manual{
		now:       start,
		frameTime: FrameDuration(frameRate),
	}
}

func (m *Manual) Now() time.Time {
	return m.now
}

// FrameTime returns the virtual time one Frame call advances.
func (m *Manual) FrameTime() time.Duration {
	return m.frameTime
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.seq++
	t := &manualTimer{due: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

func (m *Manual) RequestFrame(fn func()) Timer {
	m.seq++
	t := &manualTimer{seq: m.seq, fn: fn}
	m.frames = append(m.frames, t)
	return t
}

// Pending returns the number of timers and frame callbacks still armed.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	for _, t := range m.frames {
		if !t.done {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due timers in due order.
// The clock is set to each timer's due time before it fires.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		next.done = true
		m.now = next.due
		next.fn()
	}
	m.now = target
}

// Frame advances one frame, then runs the frame callbacks requested before it.
func (m *Manual) Frame() {
	m.Advance(m.frameTime)

	pending := m.frames
	m.frames = nil
	for _, t := range pending {
		if t.done {
			continue
		}
		t.done = true
		t.fn()
	}
}

// Run steps frames as fast as possible until ctx is cancelled.
func (m *Manual) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			m.Frame()
		}
	}
}

// nextDue pops the earliest armed timer due at or before limit.
func (m *Manual) nextDue(limit time.Time) *manualTimer {
	idx := -1
	live := m.timers[:0]
	for _, t := range m.timers {
		if t.done {
			continue
		}
		live = append(live, t)
	}
	m.timers = live

	for i, t := range m.timers {
		if t.due.After(limit) {
			continue
		}
		if idx == -1 || t.due.Before(m.timers[idx].due) ||
			(t.due.Equal(m.timers[idx].due) && t.seq < m.timers[idx].seq) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := m.timers[idx]
	m.timers = append(m.timers[:idx], m.timers[idx+1:]...)
	return t
}
