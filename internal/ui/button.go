//go:build ebiten

package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// State controls whether a widget reacts to input and whether it is drawn.
type State int

const (
	// Enabled widgets are drawn and interactive.
	Enabled State = iota
	// Disabled widgets are drawn dimmed and ignore input.
	Disabled
	// Invisible widgets are neither drawn nor interactive.
	Invisible
)

// DisabledIf returns Disabled when the condition holds, Enabled otherwise.
func DisabledIf(disabled bool) State {
	if disabled {
		return Disabled
	}
	return Enabled
}

const hoverTweenSecs = 0.12

// Button is a labeled rectangle bound to an event payload. Releasing a left
// click inside its bounds sends the event.
type Button[E any] struct {
	Bounds Bounds
	Label  string
	Event  E
	State  State

	highlight   float32
	hoverTarget float32
	tween       *gween.Tween
	pressed     bool
}

// NewButton creates an enabled button.
func NewButton[E any](bounds Bounds, label string, event E) *Button[E] {
	return &Button[E]{Bounds: bounds, Label: label, Event: event}
}

// setHover retargets the hover highlight tween when the pointer enters or
// leaves the button.
func (b *Button[E]) setHover(over bool) {
	target := float32(0)
	if over {
		target = 1
	}
	if target == b.hoverTarget {
		return
	}
	b.hoverTarget = target
	b.tween = gween.New(b.highlight, target, hoverTweenSecs, ease.OutQuad)
}

// advance steps the hover tween by dt seconds.
func (b *Button[E]) advance(dt float32) {
	if b.tween == nil {
		return
	}
	value, done := b.tween.Update(dt)
	b.highlight = value
	if done {
		b.tween = nil
	}
}
