// This file is part of this software.

// Package ram implements the byte-addressable backing stores (SDRAM, IRAM,
// boot ROM) used as bus regions. All access is little-endian, as required
// by spec §4.2, and tolerant of any alignment: unlike a peripheral
// register file, RAM never refuses an access based on width or offset.
package ram

// RAM is a flat byte-addressable backing store implementing bus.Handler,
// bus.ByteHandler and bus.HalfHandler so the bus routes any width directly
// to it without width-folding through Read32/Write32.
type RAM struct {
	name string
	data []byte
	mask uint32 // wraps offsets within a power-of-two-sized window (mirroring)
}

// New creates a RAM region of exactly size bytes, zero-initialized (spec
// §3: "RAM regions zero-initialize").
func New(name string, size int) *RAM {
	return &RAM{name: name, data: make([]byte, size)}
}

// NewMirrored creates a RAM region whose offsets wrap (mirror) back to the
// start every windowSize bytes. windowSize must be a power of two, or no
// wrapping happens. Offsets that fall between the end of the buffer and
// windowSize read as zero and ignore writes; the wrap point is windowSize,
// not bufferSize. Used for the SDRAM region (spec §4.2).
func NewMirrored(name string, bufferSize int, windowSize uint32) *RAM {
	r := &RAM{name: name, data: make([]byte, bufferSize)}
	if windowSize > 0 && windowSize&(windowSize-1) == 0 {
		r.mask = windowSize - 1
	}
	return r
}

func (r *RAM) resolve(offset uint32) uint32 {
	if r.mask != 0 {
		offset &= r.mask
	}
	if int(offset) >= len(r.data) {
		// bounds tolerance: addresses past the backing buffer (but still
		// inside the bus region) read/write as zero rather than panicking.
		return uint32(len(r.data))
	}
	return offset
}

func (r *RAM) Read8(offset uint32) uint8 {
	o := r.resolve(offset)
	if int(o) >= len(r.data) {
		return 0
	}
	return r.data[o]
}

func (r *RAM) Write8(offset uint32, val uint8) {
	o := r.resolve(offset)
	if int(o) >= len(r.data) {
		return
	}
	r.data[o] = val
}

func (r *RAM) Read16(offset uint32) uint16 {
	lo := uint16(r.Read8(offset))
	hi := uint16(r.Read8(offset + 1))
	return lo | hi<<8
}

func (r *RAM) Write16(offset uint32, val uint16) {
	r.Write8(offset, uint8(val))
	r.Write8(offset+1, uint8(val>>8))
}

func (r *RAM) Read32(offset uint32) uint32 {
	lo := uint32(r.Read16(offset))
	hi := uint32(r.Read16(offset + 2))
	return lo | hi<<16
}

func (r *RAM) Write32(offset uint32, val uint32) {
	r.Write16(offset, uint16(val))
	r.Write16(offset+2, uint16(val>>16))
}

// LoadBytes copies src into the backing buffer starting at offset, used to
// install a firmware image. Bytes that would land beyond the buffer are
// silently dropped, matching the bus's own bounds tolerance.
func (r *RAM) LoadBytes(offset uint32, src []byte) {
	for i, v := range src {
		r.Write8(offset+uint32(i), v)
	}
}

// Len returns the size of the backing buffer (not the mirrored window).
func (r *RAM) Len() int {
	return len(r.data)
}

// Name returns the region's debug name.
func (r *RAM) Name() string {
	return r.name
}
