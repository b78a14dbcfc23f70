// This file is part of this software.

// Package i2c implements the single-master I2C controller and its slave
// table abstraction (PMU, codec), per spec §4.7 and §4.9.
package i2c

import "github.com/Davidslv/zigpod-sub010/hardware/peripherals/intc"

// Controller register offsets (relative to the peripheral base).
const (
	RegAddr    = 0x00
	RegControl = 0x04
	RegStatus  = 0x08
	RegData    = 0x0C
)

const (
	ctrlStart = 1 << 0
	// ctrlByteCountShift extracts the byte count encoded in the upper bits
	// of the control register write (spec §4.7: "starting... writing the
	// control register with start+bytecount").
	ctrlByteCountShift = 8
)

const statusDone = 1 << 0

// Slave is a single I2C device: a byte-addressable register file with a
// current cursor, set by the first byte of a transfer and advanced (or
// left in place, per device convention) by subsequent accesses.
type Slave interface {
	// SetCursor positions the register cursor ahead of a read or the
	// value byte of a two-byte write.
	SetCursor(reg uint8)
	// ReadCursor returns the value at the current cursor.
	ReadCursor() uint8
	// WriteCursor stores val at the current cursor.
	WriteCursor(val uint8)
}

// Controller is the I2C master register file.
type Controller struct {
	ic     *intc.Controller
	slaves map[uint8]Slave

	addr    uint8
	status  uint32
	pending []byte // bytes written to the data register during this transfer
}

// New creates an I2C controller with no slaves attached.
func New(ic *intc.Controller) *Controller {
	return &Controller{ic: ic, slaves: make(map[uint8]Slave)}
}

// AttachSlave registers a slave at its 7-bit address.
func (c *Controller) AttachSlave(address uint8, s Slave) {
	c.slaves[address] = s
}

func (c *Controller) runTransfer(byteCount uint32) {
	s, ok := c.slaves[c.addr]
	if !ok {
		c.pending = c.pending[:0]
		c.status |= statusDone
		return
	}
	// spec §4.7: "single-byte writes... set the cursor; two-byte writes...
	// also store a value. Reads return the value at the cursor."
	if len(c.pending) >= 1 {
		s.SetCursor(c.pending[0])
	}
	if len(c.pending) >= 2 {
		s.WriteCursor(c.pending[1])
	}
	c.pending = c.pending[:0]
	c.status |= statusDone
	if c.ic != nil {
		c.ic.Assert(intc.I2C)
	}
}

// Read32 implements bus.Handler.
func (c *Controller) Read32(offset uint32) uint32 {
	switch offset {
	case RegAddr:
		return uint32(c.addr)
	case RegStatus:
		return c.status
	case RegData:
		s, ok := c.slaves[c.addr]
		if !ok {
			return 0
		}
		return uint32(s.ReadCursor())
	default:
		return 0
	}
}

// Write32 implements bus.Handler.
func (c *Controller) Write32(offset uint32, val uint32) {
	switch offset {
	case RegAddr:
		c.addr = uint8(val)
	case RegControl:
		if val&ctrlStart != 0 {
			count := val >> ctrlByteCountShift
			c.runTransfer(count)
		}
	case RegStatus:
		c.status &^= val // write-1-to-clear on done
	case RegData:
		c.pending = append(c.pending, byte(val))
	}
}
