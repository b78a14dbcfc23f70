// This file is part of this software.

// Package dma implements the four-channel DMA controller described in spec
// §4.8: configure-then-commit channels that complete a transfer in full at
// commit time rather than modeling real transfer timing.
package dma

import (
	"github.com/Davidslv/zigpod-sub010/hardware/memory/bus"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/intc"
)

// NumChannels is the channel count (spec §4.8).
const NumChannels = 4

// Per-channel register stride and field offsets.
const (
	channelStride = 0x20
	offSource     = 0x00
	offDest       = 0x04
	offCount      = 0x08
	offConfig     = 0x0C
	offControl    = 0x10
)

// Config register bit layout: source and destination increment flags. No
// other config bits are decoded; there is no request-gate field, and a
// started channel always transfers at once.
const (
	cfgSrcIncrement = 1 << 0
	cfgDstIncrement = 1 << 1
)

const ctrlStart = 1 << 0

type channel struct {
	source, dest, count, config uint32
}

// Memory is the bus-level read/write surface a DMA transfer moves bytes
// through.
type Memory interface {
	Read(addr uint32, width bus.Width) uint32
	Write(addr uint32, width bus.Width, val uint32)
}

// DMA is the four-channel controller register file.
type DMA struct {
	channels [NumChannels]channel
	mem      Memory
	ic       *intc.Controller
}

// New creates a DMA controller wired to mem for transfers and ic for the
// completion interrupt.
func New(mem Memory, ic *intc.Controller) *DMA {
	return &DMA{mem: mem, ic: ic}
}

func (d *DMA) decode(offset uint32) (ch int, field uint32) {
	ch = int(offset / channelStride)
	field = offset % channelStride
	return
}

func (d *DMA) start(ch *channel) {
	src, dst := ch.source, ch.dest
	srcStep := uint32(0)
	if ch.config&cfgSrcIncrement != 0 {
		srcStep = 1
	}
	dstStep := uint32(0)
	if ch.config&cfgDstIncrement != 0 {
		dstStep = 1
	}

	for i := uint32(0); i < ch.count; i++ {
		v := d.mem.Read(src, bus.Byte)
		d.mem.Write(dst, bus.Byte, v)
		src += srcStep
		dst += dstStep
	}

	ch.source = src
	ch.dest = dst
	if d.ic != nil {
		d.ic.Assert(intc.DMA)
	}
}

// Read32 implements bus.Handler.
func (d *DMA) Read32(offset uint32) uint32 {
	ch, field := d.decode(offset)
	if ch < 0 || ch >= NumChannels {
		return 0
	}
	c := &d.channels[ch]
	switch field {
	case offSource:
		return c.source
	case offDest:
		return c.dest
	case offCount:
		return c.count
	case offConfig:
		return c.config
	default:
		return 0
	}
}

// Write32 implements bus.Handler.
func (d *DMA) Write32(offset uint32, val uint32) {
	ch, field := d.decode(offset)
	if ch < 0 || ch >= NumChannels {
		return
	}
	c := &d.channels[ch]
	switch field {
	case offSource:
		c.source = val
	case offDest:
		c.dest = val
	case offCount:
		c.count = val
	case offConfig:
		c.config = val
	case offControl:
		if val&ctrlStart != 0 {
			d.start(c)
		}
	}
}
