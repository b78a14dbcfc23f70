// This file is part of this software.

// Package timer implements the two system down-counters plus the
// free-running microsecond counter described in spec §4.4.
package timer

import "github.com/Davidslv/zigpod-sub010/hardware/peripherals/intc"

// Register offsets, one bank per timer plus the shared microsecond counter.
// The PP5020 exposes both timers through the same 32-bit-aligned register
// file; offsets below are relative to the peripheral base.
const (
	RegTimer1Reload  = 0x00
	RegTimer1Current = 0x04
	RegTimer1Ctrl    = 0x08
	RegTimer2Reload  = 0x10
	RegTimer2Current = 0x14
	RegTimer2Ctrl    = 0x18
	RegUSecCounter   = 0x20
)

const ctrlEnable = 1 << 0

// microsPerTick is the calibration this model uses to advance the
// free-running counter: one tick is charged per executed instruction (spec
// §4.4, §9), and each tick adds one whole microsecond. It is an unexported
// constant; nothing outside this package can change it.
const microsPerTick = 1

type counter struct {
	reload  uint32
	current uint32
	enabled bool
	id      uint
}

// tick decrements the counter by one tick if enabled; on underflow it
// reloads and asserts its interrupt line. A reload of zero means "fire
// every tick" (spec §8: "a timer with reload 0... the spec must choose" —
// this model treats 0 as an immediate, continuous reload, matching the
// most common firmware use of timer channel 0 as a fast scheduler tick).
func (c *counter) tick(ic *intc.Controller) {
	if !c.enabled {
		return
	}
	if c.current == 0 {
		c.current = c.reload
		ic.Assert(c.id)
		return
	}
	c.current--
}

// Timers is the register file backing both system timers and the
// microsecond counter.
type Timers struct {
	t1, t2 counter
	usec   uint32
	ic     *intc.Controller
}

// New creates a Timers block wired to ic for interrupt assertion.
func New(ic *intc.Controller) *Timers {
	return &Timers{
		t1: counter{id: intc.Timer1},
		t2: counter{id: intc.Timer2},
		ic: ic,
	}
}

// Tick advances both timers and the microsecond counter by one orchestrator
// tick (spec §4.10).
func (t *Timers) Tick() {
	t.t1.tick(t.ic)
	t.t2.tick(t.ic)
	t.usec += microsPerTick
}

// Read32 implements bus.Handler.
func (t *Timers) Read32(offset uint32) uint32 {
	switch offset {
	case RegTimer1Reload:
		return t.t1.reload
	case RegTimer1Current:
		return t.t1.current
	case RegTimer1Ctrl:
		return boolToCtrl(t.t1.enabled)
	case RegTimer2Reload:
		return t.t2.reload
	case RegTimer2Current:
		return t.t2.current
	case RegTimer2Ctrl:
		return boolToCtrl(t.t2.enabled)
	case RegUSecCounter:
		return t.usec
	default:
		return 0
	}
}

// Write32 implements bus.Handler.
func (t *Timers) Write32(offset uint32, val uint32) {
	switch offset {
	case RegTimer1Reload:
		t.t1.reload = val
		t.t1.current = val
	case RegTimer1Ctrl:
		t.t1.enabled = val&ctrlEnable != 0
	case RegTimer2Reload:
		t.t2.reload = val
		t.t2.current = val
	case RegTimer2Ctrl:
		t.t2.enabled = val&ctrlEnable != 0
	}
}

func boolToCtrl(enabled bool) uint32 {
	if enabled {
		return ctrlEnable
	}
	return 0
}
