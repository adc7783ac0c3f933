// Package scene hosts the active scene behind a polymorphic handle and
// routes scene-switch events between scenes.
package scene

import "fmt"

// Event is a request to replace the active scene.
type Event int

const (
	// GoMainMenu switches to the main menu.
	GoMainMenu Event = iota
	// GoNoise1D switches to the one-dimensional noise test.
	GoNoise1D
	// GoNoise2D switches to the two-dimensional noise test.
	GoNoise2D
)

// ParseStart maps a starting-scene name to its switch event.
func ParseStart(name string) (Event, error) {
	switch name {
	case "menu":
		return GoMainMenu, nil
	case "noise1d":
		return GoNoise1D, nil
	case "noise2d":
		return GoNoise2D, nil
	}
	return GoMainMenu, fmt.Errorf("unknown starting scene %q", name)
}

// Events is the FIFO scene-switch queue. Producers (UI widgets, the
// manager's own shortcuts) and the one consumer all run on the same tick, so
// a plain slice suffices; the queue only decouples "event detected during
// update" from "scene replaced".
type Events struct {
	queue []Event
}

// NewEvents creates an empty queue.
func NewEvents() *Events {
	return &Events{}
}

// Send enqueues an event.
func (e *Events) Send(ev Event) {
	e.queue = append(e.queue, ev)
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	return len(e.queue)
}

// Drain consumes every queued event in FIFO order, including events enqueued
// by fn itself, stopping at the first error.
func (e *Events) Drain(fn func(Event) error) error {
	for len(e.queue) > 0 {
		ev := e.queue[0]
		e.queue = e.queue[1:]
		if err := fn(ev); err != nil {
			return err
		}
	}
	return nil
}
