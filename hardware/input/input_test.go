// This file is part of this software.

package input

import (
	"testing"

	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/clickwheel"
)

func TestDrainDeliversPushedEventsInOrder(t *testing.T) {
	s := NewSource()
	s.Push(clickwheel.Event{Buttons: 1})
	s.Push(clickwheel.Event{Buttons: 2})

	w := clickwheel.New()
	s.Drain(w)

	if got := w.Read32(clickwheel.RegData); uint8(got) != 1 {
		t.Errorf("first drained event buttons = %#x, want 1", uint8(got))
	}
	if got := w.Read32(clickwheel.RegData); uint8(got) != 2 {
		t.Errorf("second drained event buttons = %#x, want 2", uint8(got))
	}
}

func TestDrainOnEmptyQueueIsNoOp(t *testing.T) {
	s := NewSource()
	w := clickwheel.New()
	s.Drain(w) // must not block or panic

	if got := w.Read32(clickwheel.RegStatus); got != 0 {
		t.Error("drain of an empty source produced a queued event")
	}
}

func TestPushBeyondCapacityDropsRatherThanBlocks(t *testing.T) {
	s := NewSource()
	for i := 0; i < queueCapacity+10; i++ {
		s.Push(clickwheel.Event{Buttons: uint8(i)}) // must never block
	}

	w := clickwheel.New()
	s.Drain(w)
	if got := w.Read32(clickwheel.RegStatus); got == 0 {
		t.Error("expected at least one event to have been queued")
	}
}
