/*
Package window tracks the application windows of one desktop session.

A Manager holds at most one live Record per application id. Records move between
open and minimized, carry an orthogonal maximized flag, and are removed on close.
Geometry is expressed in percent of the viewport. Stacking order comes from a
monotonic counter: every open or focus takes the next value, so z-order values are
never reused, and exactly one record is focused after each of those operations.

Operations on unknown ids are no-ops so that shell commands can issue open and
close intents without checking first.

Example usage:

	m := window.NewManager(window.DefaultLayout())
	m.SetViewport(window.Viewport{Width: 1280, Height: 800})
	m.Open(window.AppTerminal)
	m.Maximize(window.AppTerminal)
*/
package window
