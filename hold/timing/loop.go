package timing

import (
	"context"
	"log/slog"
	"time"
)

// Loop is a real-time, single goroutine event loop.
// Every callback (timers, frames and posted functions) runs inside Run, so the
// code it drives never needs locking. Post is the only method that may be
// called from other goroutines.
type Loop struct {
	frameTime time.Duration
	queue     chan func()
	frames    []*loopTimer
}

type loopTimer struct {
	fn    func()
	timer *time.Timer
	done  bool
}

func (t *loopTimer) fire() {
	if t.done {
		return
	}
	t.done = true
	t.fn()
}

func (t *loopTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

// NewLoop creates a loop whose frames tick at frameRate per second.
func NewLoop(frameRate int) *Loop {
	return &Loop{
		frameTime: FrameDuration(frameRate),
		queue:     make(chan func(), 256),
	}
}

func (l *Loop) Now() time.Time {
	return time.Now()
}

// FrameTime returns the interval between frame flushes.
func (l *Loop) FrameTime() time.Duration {
	return l.frameTime
}

// Post queues fn to run on the loop goroutine. It blocks while the queue is full.
func (l *Loop) Post(fn func()) {
	l.queue <- fn
}

func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{fn: fn}
	t.timer = time.AfterFunc(d, func() {
		l.Post(t.fire)
	})
	return t
}

func (l *Loop) RequestFrame(fn func()) Timer {
	t := &loopTimer{fn: fn}
	l.frames = append(l.frames, t)
	return t
}

// Run processes posted callbacks and frame ticks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.frameTime)
	defer ticker.Stop()

	slog.Debug("Event loop started", "frame_time", l.frameTime)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("Event loop stopped")
			return nil
		case fn := <-l.queue:
			fn()
		case <-ticker.C:
			l.flushFrames()
		}
	}
}

// flushFrames runs the callbacks requested before this frame began.
// Callbacks requested while flushing wait for the next frame.
func (l *Loop) flushFrames() {
	pending := l.frames
	l.frames = nil
	for _, t := range pending {
		t.fire()
	}
}
