package headless_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-holdevent/hold/backend"
	"github.com/valerio/go-holdevent/hold/backend/headless"
	"github.com/valerio/go-holdevent/hold/input"
	"github.com/valerio/go-holdevent/hold/timing"
)

func TestParseScript(t *testing.T) {
	script, err := headless.ParseScript([]byte(`
steps:
  - at: 300ms
    event: key-up
    code: Space
  - at: 1s
    event: blur
  - at: 0s
    event: key-down
    code: Space
tail: 50ms
`))
	require.NoError(t, err)

	require.Len(t, script.Steps, 3)
	assert.Equal(t, "key-down", script.Steps[0].Event, "steps are sorted by time")
	assert.Equal(t, 300*time.Millisecond, script.Steps[1].At)
	assert.Equal(t, 1050*time.Millisecond, script.Duration())
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		step bool
	}{
		{name: "unknown event", body: "steps:\n  - at: 0s\n    event: wiggle\n", step: true},
		{name: "key event without code", body: "steps:\n  - at: 0s\n    event: key-down\n", step: true},
		{name: "unknown target", body: "steps:\n  - at: 0s\n    event: key-down\n    code: Space\n    target: canvas\n", step: true},
		{name: "negative time", body: "steps:\n  - at: -1s\n    event: blur\n", step: true},
		{name: "bad duration", body: "steps:\n  - at: soon\n    event: blur\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := headless.ParseScript([]byte(tt.body))
			require.Error(t, err)
			if tt.step {
				assert.ErrorIs(t, err, headless.ErrInvalidStep)
			}
		})
	}
}

func TestLoadScript_Missing(t *testing.T) {
	_, err := headless.LoadScript("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestHeadlessBackend_ReplaysScript(t *testing.T) {
	script, err := headless.LoadScript("testdata/pointer_and_key.yaml")
	require.NoError(t, err)

	tb := timing.NewManual(time.Unix(0, 0), 100)
	hub := input.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var seen []string
	hub.OnPointerDown(input.Region{Width: 100, Height: 100}, func(ev input.PointerEvent) {
		seen = append(seen, "down")
		assert.Equal(t, "button", ev.Target.Name)
	})
	hub.OnPointerUp(func(input.PointerEvent) { seen = append(seen, "up") })
	hub.OnKeyDown(func(ev input.KeyEvent) {
		seen = append(seen, "key:"+ev.Target.Kind.String())
	})
	hub.OnBlur(func(input.FocusEvent) { seen = append(seen, "blur") })

	h := headless.New(script)
	quits := 0
	require.NoError(t, h.Init(backend.BackendConfig{
		Hub:     hub,
		Regions: []input.Region{{Name: "button", X: 0, Y: 0, Width: 10, Height: 10, Kind: input.KindButton}},
		Callbacks: backend.BackendCallbacks{OnQuit: func() {
			quits++
			cancel()
		}},
	}))

	var onFrame func()
	onFrame = func() {
		require.NoError(t, h.Update(tb.Now()))
		tb.RequestFrame(onFrame)
	}
	onFrame()

	require.NoError(t, tb.Run(ctx))
	assert.Equal(t, []string{"down", "down", "up", "up", "key:input", "key:none", "blur"}, seen)
	assert.Equal(t, 1, quits)
	assert.GreaterOrEqual(t, tb.Now().Sub(time.Unix(0, 0)), 900*time.Millisecond)
	assert.NoError(t, h.Cleanup())
}

func TestHeadlessImplementsBackend(t *testing.T) {
	var _ backend.Backend = (*headless.Backend)(nil)
}
