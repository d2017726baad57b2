package hold

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-holdevent/hold/input"
)

var button = input.Region{Name: "button", X: 10, Y: 10, Width: 20, Height: 5, Kind: input.KindButton}

func press(hub *input.Hub, id int64) {
	hub.PointerDown(input.PointerEvent{PointerID: id, X: 12, Y: 12})
}

func release(hub *input.Hub, id int64) {
	hub.PointerUp(input.PointerEvent{PointerID: id, X: 0, Y: 0})
}

func TestElementHold_MultiplePointers(t *testing.T) {
	tb := newManual()
	hub := input.NewHub()
	h := NewElementHold(tb, hub, button, 0)
	rec := record(h.Controller)

	press(hub, 1)
	assert.True(t, h.Holding())

	press(hub, 2)
	assert.True(t, h.Holding())
	assert.Equal(t, 2, h.ActivePointers())

	release(hub, 1)
	assert.True(t, h.Holding())
	assert.Equal(t, 1, h.ActivePointers())

	release(hub, 2)
	assert.False(t, h.Holding())
	assert.Equal(t, 1, rec.count(HoldStart))
	assert.Equal(t, 1, rec.count(HoldEnd))

	end := rec.last()
	ev, ok := end.OriginalEvent.(input.PointerEvent)
	require.True(t, ok)
	assert.Equal(t, int64(2), ev.PointerID)
}

func TestElementHold_PressOutsideElementIsIgnored(t *testing.T) {
	tb := newManual()
	hub := input.NewHub()
	h := NewElementHold(tb, hub, button, 0)
	rec := record(h.Controller)

	hub.PointerDown(input.PointerEvent{PointerID: 1, X: 0, Y: 0})

	assert.False(t, h.Holding())
	assert.Empty(t, rec.events)
	assert.Equal(t, 0, h.ActivePointers())
}

func TestElementHold_ReleaseOutsideElementEndsHold(t *testing.T) {
	tb := newManual()
	hub := input.NewHub()
	h := NewElementHold(tb, hub, button, 0)
	rec := record(h.Controller)

	press(hub, 1)
	tb.Frame()
	hub.PointerUp(input.PointerEvent{PointerID: 1, X: 500, Y: 500})

	assert.Equal(t, []Type{HoldStart, Holding, HoldEnd}, rec.types())
}

func TestElementHold_UnknownReleaseIsNoop(t *testing.T) {
	tb := newManual()
	hub := input.NewHub()
	h := NewElementHold(tb, hub, button, 0)
	rec := record(h.Controller)

	release(hub, 7)
	press(hub, 1)
	release(hub, 7)

	assert.True(t, h.Holding())
	assert.Equal(t, []Type{HoldStart}, rec.types())
}

func TestElementHold_BlurForcesEnd(t *testing.T) {
	tb := newManual()
	hub := input.NewHub()
	h := NewElementHold(tb, hub, button, 50*time.Millisecond)
	rec := record(h.Controller)

	press(hub, 1)
	press(hub, 2)
	tb.Advance(120 * time.Millisecond)
	hub.Blur(input.FocusEvent{})

	assert.False(t, h.Holding())
	assert.Equal(t, 0, h.ActivePointers())
	assert.Equal(t, []Type{HoldStart, Holding, Holding, HoldEnd}, rec.types())
	assert.Equal(t, 120*time.Millisecond, rec.last().ElapsedTime)

	// A later release of a cleared pointer changes nothing
	release(hub, 1)
	assert.Equal(t, 1, rec.count(HoldEnd))

	// Blur while idle emits nothing
	hub.Blur(input.FocusEvent{})
	assert.Equal(t, 1, rec.count(HoldEnd))
}

func TestElementHold_DisabledStillTracksPointers(t *testing.T) {
	tb := newManual()
	hub := input.NewHub()
	h := NewElementHold(tb, hub, button, 0)
	rec := record(h.Controller)

	h.SetEnabled(false)
	press(hub, 1)
	assert.False(t, h.Holding())
	assert.Empty(t, rec.events)

	h.SetEnabled(true)
	press(hub, 2)
	assert.True(t, h.Holding())

	release(hub, 2)
	assert.True(t, h.Holding(), "pointer 1 is still down")
	release(hub, 1)
	assert.False(t, h.Holding())
}

func TestElementHold_Close(t *testing.T) {
	tb := newManual()
	hub := input.NewHub()
	h := NewElementHold(tb, hub, button, 0)
	assert.Equal(t, 3, hub.ListenerCount())

	h.Close()
	assert.Equal(t, 0, hub.ListenerCount())

	press(hub, 1)
	assert.False(t, h.Holding())
}
