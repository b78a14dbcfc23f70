// This file is part of this software.

// Package gpio implements the twelve ports of 32 pins described in spec
// §4.9: per-pin direction, output latch, input sample, and an interrupt
// mask register that is stored and read back but raises no interrupt.
package gpio

// NumPorts is the port count (spec §4.9).
const NumPorts = 12

// Per-port register stride and field offsets within a port's 16-byte
// block: direction, output latch, input sample, interrupt mask.
const (
	portStride   = 0x10
	offDirection = 0x00
	offOutput    = 0x04
	offInput     = 0x08
	offIntMask   = 0x0C
)

type port struct {
	direction uint32 // 1 = output
	output    uint32
	input     uint32
	intMask   uint32
}

// GPIO is the register file for all twelve ports.
type GPIO struct {
	ports [NumPorts]port
}

// New creates a GPIO block with all pins as inputs reading zero.
func New() *GPIO { return &GPIO{} }

// SetInput drives port p's input sample register from the host side (e.g.
// a button or strap wired to a GPIO pin), independent of the bus.
func (g *GPIO) SetInput(p int, val uint32) {
	if p < 0 || p >= NumPorts {
		return
	}
	g.ports[p].input = val
}

func (g *GPIO) decode(offset uint32) (p int, field uint32) {
	p = int(offset / portStride)
	field = offset % portStride
	return
}

// Read32 implements bus.Handler.
func (g *GPIO) Read32(offset uint32) uint32 {
	p, field := g.decode(offset)
	if p < 0 || p >= NumPorts {
		return 0
	}
	pt := &g.ports[p]
	switch field {
	case offDirection:
		return pt.direction
	case offOutput:
		return pt.output
	case offInput:
		// reading the input register for an output-configured pin returns
		// the last latched output value, matching typical GPIO controller
		// behaviour.
		return (pt.input &^ pt.direction) | (pt.output & pt.direction)
	case offIntMask:
		return pt.intMask
	default:
		return 0
	}
}

// Write32 implements bus.Handler.
func (g *GPIO) Write32(offset uint32, val uint32) {
	p, field := g.decode(offset)
	if p < 0 || p >= NumPorts {
		return
	}
	pt := &g.ports[p]
	switch field {
	case offDirection:
		pt.direction = val
	case offOutput:
		pt.output = val
	case offIntMask:
		pt.intMask = val
	// the input register is read-only from the bus's point of view; it is
	// driven only by SetInput.
	}
}
