package timing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_TimersAndFramesRunOnLoop(t *testing.T) {
	l := NewLoop(200)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var order []string
	l.Post(func() {
		l.AfterFunc(10*time.Millisecond, func() {
			order = append(order, "timer")
			l.RequestFrame(func() {
				order = append(order, "frame")
				cancel()
			})
		})
	})

	require.NoError(t, l.Run(ctx))
	assert.Equal(t, []string{"timer", "frame"}, order)
}

func TestLoop_StoppedTimerNeverFires(t *testing.T) {
	l := NewLoop(200)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	fired := false
	l.Post(func() {
		timer := l.AfterFunc(5*time.Millisecond, func() { fired = true })
		assert.True(t, timer.Stop())

		frame := l.RequestFrame(func() { fired = true })
		assert.True(t, frame.Stop())

		l.AfterFunc(50*time.Millisecond, cancel)
	})

	require.NoError(t, l.Run(ctx))
	assert.False(t, fired)
}
