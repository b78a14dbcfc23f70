// This file is part of this software.

// Package input defines the host-to-core input event queue: a bounded
// channel draining into the click wheel peripheral between
// instructions (spec §5: "a bounded event queue for input... drained
// between instructions").
package input

import "github.com/Davidslv/zigpod-sub010/hardware/peripherals/clickwheel"

// queueCapacity bounds the event backlog; once it is full, further pushes
// are dropped (see Push).
const queueCapacity = 256

// Source is the host-facing producer end: push events from a GUI/keyboard
// thread without touching core state directly.
type Source struct {
	events chan clickwheel.Event
}

// NewSource creates an empty input queue.
func NewSource() *Source {
	return &Source{events: make(chan clickwheel.Event, queueCapacity)}
}

// Push enqueues an event, dropping it if the queue is full rather than
// blocking the host thread indefinitely.
func (s *Source) Push(e clickwheel.Event) {
	select {
	case s.events <- e:
	default:
	}
}

// Drain delivers every queued event to wheel, called once per orchestrator
// tick (spec §4.10).
func (s *Source) Drain(wheel *clickwheel.ClickWheel) {
	for {
		select {
		case e := <-s.events:
			wheel.PushEvent(e)
		default:
			return
		}
	}
}
