package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-holdevent/hold/input"
)

func TestRegionAt(t *testing.T) {
	regions := []input.Region{
		{Name: "button", X: 0, Y: 0, Width: 10, Height: 5},
		{Name: "field", X: 0, Y: 6, Width: 10, Height: 3},
	}

	r, ok := RegionAt(regions, 3, 7)
	assert.True(t, ok)
	assert.Equal(t, "field", r.Name)

	_, ok = RegionAt(regions, 30, 30)
	assert.False(t, ok)
}

func TestBackendCallbacks_NilSafe(t *testing.T) {
	var cb BackendCallbacks
	assert.NotPanics(t, func() {
		cb.Quit()
		cb.ToggleEnabled()
	})

	quit := false
	cb.OnQuit = func() { quit = true }
	cb.Quit()
	assert.True(t, quit)
}
