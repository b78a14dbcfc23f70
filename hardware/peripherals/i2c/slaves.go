// This file is part of this software.

package i2c

// PMU and codec slave addresses (spec §4.9).
const (
	PMUAddress   = 0x08
	CodecAddress = 0x1A
)

// pmuIDByte is the fixed identification value read back from register 0
// (spec §4.9).
const pmuIDByte = 0x35

// PMU models the power-management-unit I2C slave: an 8-bit register file
// where register 0 always reads the fixed ID byte.
type PMU struct {
	regs   [256]uint8
	cursor uint8
}

// NewPMU creates a PMU slave with register 0 pre-seeded to the ID byte.
func NewPMU() *PMU {
	p := &PMU{}
	p.regs[0] = pmuIDByte
	return p
}

func (p *PMU) SetCursor(reg uint8) { p.cursor = reg }

func (p *PMU) ReadCursor() uint8 {
	if p.cursor == 0 {
		return pmuIDByte
	}
	return p.regs[p.cursor]
}

func (p *PMU) WriteCursor(val uint8) {
	if p.cursor == 0 {
		return // ID register is read-only
	}
	p.regs[p.cursor] = val
}

// Codec models the audio codec I2C slave: ~64 16-bit registers accessed via
// a 7-bit sub-address (spec §4.9). The controller's byte-oriented cursor
// protocol addresses the low byte of each 16-bit register; WriteCursor
// updates the low byte and ReadCursor returns it, matching the single-byte
// transfer shape spec §4.7 describes (a full 16-bit codec write arrives as
// two I2C-level byte transfers from firmware's point of view).
type Codec struct {
	regs   [64]uint16
	cursor uint8
}

// NewCodec creates a codec slave with all registers zeroed.
func NewCodec() *Codec { return &Codec{} }

func (c *Codec) SetCursor(reg uint8) { c.cursor = reg % uint8(len(c.regs)) }

func (c *Codec) ReadCursor() uint8 {
	return uint8(c.regs[c.cursor])
}

func (c *Codec) WriteCursor(val uint8) {
	c.regs[c.cursor] = (c.regs[c.cursor] &^ 0xFF) | uint16(val)
}

// Register exposes the full 16-bit register value directly, without going
// through the byte-oriented I2C cursor protocol.
func (c *Codec) Register(n int) uint16 {
	return c.regs[n%len(c.regs)]
}
