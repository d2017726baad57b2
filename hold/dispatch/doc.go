// Package dispatch provides the synchronous listener registry shared by the
// hold controllers and the input hub.
//
// Listeners are called in registration order against a snapshot of the
// registry, so adding or removing listeners from inside a callback only
// affects later dispatches.
package dispatch
