package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_OrderAndDuplicates(t *testing.T) {
	d := New[string, int]()

	var calls []string
	first := Listen(func(v int) { calls = append(calls, "first") })
	second := Listen(func(v int) { calls = append(calls, "second") })

	d.Add("tick", first)
	d.Add("tick", second)
	d.Add("tick", first) // duplicate, ignored

	assert.Equal(t, 2, d.Len("tick"))

	d.Dispatch("tick", 1)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcher_Remove(t *testing.T) {
	d := New[string, int]()

	count := 0
	l := Listen(func(int) { count++ })

	// Removing from an unknown type is a no-op
	d.Remove("missing", l)

	d.Add("tick", l)
	d.Remove("tick", l)
	d.Remove("tick", l)

	d.Dispatch("tick", 1)
	assert.Equal(t, 0, count)
	assert.False(t, d.Has("tick", l))
	assert.Equal(t, 0, d.Total())
}

func TestDispatcher_TypesAreIndependent(t *testing.T) {
	d := New[string, string]()

	var got []string
	d.Add("a", Listen(func(v string) { got = append(got, "a:"+v) }))
	d.Add("b", Listen(func(v string) { got = append(got, "b:"+v) }))

	d.Dispatch("a", "x")
	d.Dispatch("c", "y")

	assert.Equal(t, []string{"a:x"}, got)
	assert.Equal(t, 2, d.Total())
}

func TestDispatcher_SnapshotSemantics(t *testing.T) {
	tests := []struct {
		name          string
		firstPass     []string
		secondPass    []string
		mutateInFirst func(d *Dispatcher[string, int], self, other *Listener[int])
	}{
		{
			name:       "removing a later listener does not skip it in the current pass",
			firstPass:  []string{"self", "other"},
			secondPass: []string{"self"},
			mutateInFirst: func(d *Dispatcher[string, int], self, other *Listener[int]) {
				d.Remove("evt", other)
			},
		},
		{
			name:       "self removal takes effect on the next pass",
			firstPass:  []string{"self", "other"},
			secondPass: []string{"other"},
			mutateInFirst: func(d *Dispatcher[string, int], self, other *Listener[int]) {
				d.Remove("evt", self)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New[string, int]()

			var calls []string
			pass := 0
			var self, other *Listener[int]
			self = Listen(func(int) {
				calls = append(calls, "self")
				if pass == 1 {
					tt.mutateInFirst(d, self, other)
				}
			})
			other = Listen(func(int) { calls = append(calls, "other") })
			d.Add("evt", self)
			d.Add("evt", other)

			pass = 1
			d.Dispatch("evt", 0)
			assert.Equal(t, tt.firstPass, calls)

			calls = nil
			pass = 2
			d.Dispatch("evt", 0)
			assert.Equal(t, tt.secondPass, calls)
		})
	}
}

func TestDispatcher_AddDuringDispatch(t *testing.T) {
	d := New[string, int]()

	lateCalls := 0
	late := Listen(func(int) { lateCalls++ })
	d.Add("evt", Listen(func(int) { d.Add("evt", late) }))

	d.Dispatch("evt", 0)
	assert.Equal(t, 0, lateCalls, "listener added mid-dispatch must wait for the next pass")

	d.Dispatch("evt", 0)
	assert.Equal(t, 1, lateCalls)
}

func TestDispatcher_ListenerPanicPropagates(t *testing.T) {
	d := New[string, int]()
	d.Add("evt", Listen(func(int) { panic("boom") }))

	assert.PanicsWithValue(t, "boom", func() {
		d.Dispatch("evt", 0)
	})
}
