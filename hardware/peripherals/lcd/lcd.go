// This file is part of this software.

// Package lcd implements the 320x240 RGB565 framebuffer and its two
// streamed write paths — the "main" path and the "bridge" path — described
// in spec §4.6.
package lcd

import "github.com/Davidslv/zigpod-sub010/hardware/memory/bus"

// Width and Height fix the framebuffer geometry (spec §4.6).
const (
	Width  = 320
	Height = 240
)

// Register offsets on the "main" path (base 0x30000000).
const (
	RegMainAddr   = 0x00
	RegMainData   = 0x04
	RegMainCommit = 0x30000 // 0x30030000 absolute, per spec §8 scenario 5
)

// Register offsets on the "bridge" path (base 0x70008A00, spec §4.6).
const (
	RegBridgeAddr      = 0x00
	RegBridgeData      = 0x04
	RegBridgeBlockSrc  = 0x08
	RegBridgeBlockLen  = 0x0C
	RegBridgeBlockGo   = 0x10
	RegBridgeCommit    = 0x14
)

// Sink receives published framebuffer copies (spec §5: "the framebuffer is
// published by copy at commit time"). A host front-end implements this; the
// core never depends on one.
type Sink interface {
	Publish(frame []uint16)
}

// LCD owns the backing framebuffer and the cursor state for each write
// path. Main and bridge write into the same buffer (spec §4.6: "Both paths
// write 16-bit RGB565 pixels into the same... framebuffer").
type LCD struct {
	buf [Width * Height]uint16

	mainCursor uint32

	bridgeCursor  uint32
	blockSrc      uint32
	blockLen      uint32
	mem           BlockReader

	sink Sink
}

// BlockReader is the bus-side view the bridge's block-transfer mode reads
// from (spec §4.6: "a block-transfer mode that copies N pixels from a
// memory-side FIFO").
type BlockReader interface {
	Read(addr uint32, width bus.Width) uint32
}

// New creates an LCD with no sink attached; call SetSink to publish frames.
func New() *LCD {
	return &LCD{}
}

// SetSink attaches the framebuffer consumer.
func (l *LCD) SetSink(sink Sink) { l.sink = sink }

// SetMemory attaches the bus-facing reader used by the bridge's block
// transfer mode.
func (l *LCD) SetMemory(mem BlockReader) { l.mem = mem }

func (l *LCD) writePixel(cursor *uint32, val uint16) {
	if int(*cursor) < len(l.buf) {
		l.buf[*cursor] = val
	}
	*cursor++
}

func (l *LCD) commit() {
	if l.sink == nil {
		return
	}
	frame := make([]uint16, len(l.buf))
	copy(frame, l.buf[:])
	l.sink.Publish(frame)
}

// Read32 implements bus.Handler for the main path.
func (l *LCD) Read32(offset uint32) uint32 {
	switch offset {
	case RegMainAddr:
		return l.mainCursor
	default:
		return 0
	}
}

// Write32 implements bus.Handler for the main path (spec §4.6: control
// register sets the target address; data register writes auto-increment).
func (l *LCD) Write32(offset uint32, val uint32) {
	switch offset {
	case RegMainAddr:
		l.mainCursor = val
	case RegMainData:
		l.writePixel(&l.mainCursor, uint16(val))
	case RegMainCommit:
		l.commit()
	}
}

// Bridge exposes the second register file as a distinct bus.Handler so it
// can be mapped at its own base address.
type Bridge struct {
	lcd *LCD
}

// NewBridge wraps lcd with the bridge-path register file.
func NewBridge(lcd *LCD) *Bridge { return &Bridge{lcd: lcd} }

// Read32 implements bus.Handler for the bridge path.
func (b *Bridge) Read32(offset uint32) uint32 {
	switch offset {
	case RegBridgeAddr:
		return b.lcd.bridgeCursor
	default:
		return 0
	}
}

// Write32 implements bus.Handler for the bridge path, including the
// block-DMA-like transfer mode (spec §4.6).
func (b *Bridge) Write32(offset uint32, val uint32) {
	l := b.lcd
	switch offset {
	case RegBridgeAddr:
		l.bridgeCursor = val
	case RegBridgeData:
		l.writePixel(&l.bridgeCursor, uint16(val))
	case RegBridgeBlockSrc:
		l.blockSrc = val
	case RegBridgeBlockLen:
		l.blockLen = val
	case RegBridgeBlockGo:
		if l.mem == nil {
			return
		}
		for i := uint32(0); i < l.blockLen; i++ {
			v := uint16(l.mem.Read(l.blockSrc+i*2, bus.Half))
			l.writePixel(&l.bridgeCursor, v)
		}
	case RegBridgeCommit:
		l.commit()
	}
}
