// This file is part of this software.

// Package bus defines the memory bus concept used throughout the SoC: a
// CPU-facing Read/Write surface routed to one of a small number of static
// regions, each either a raw backing buffer (RAM) or a peripheral register
// file. For an explanation of the routing rules see spec §4.2.
package bus

import "github.com/Davidslv/zigpod-sub010/internal/faults"

// Width is the access width of a single bus transaction, in bytes.
type Width uint32

const (
	Byte Width = 1
	Half Width = 2
	Word Width = 4
)

// Handler is implemented by anything that can back a bus region with
// 32-bit little-endian register semantics: a peripheral's register file,
// or (wrapped) a raw RAM buffer.
type Handler interface {
	Read32(offset uint32) uint32
	Write32(offset uint32, val uint32)
}

// ByteHandler is implemented by handlers that define their own narrower
// byte semantics rather than accepting the bus's generic width-folding of
// a 32-bit register (spec §4.2: "peripheral handlers may demand 32-bit
// aligned access and return zero for unaligned/undersized access").
type ByteHandler interface {
	Read8(offset uint32) uint8
	Write8(offset uint32, val uint8)
}

// HalfHandler is the 16-bit equivalent of ByteHandler, used by the ATA data
// port and other naturally 16-bit registers.
type HalfHandler interface {
	Read16(offset uint32) uint16
	Write16(offset uint32, val uint16)
}

// Region is one entry in the bus's static routing table.
type Region struct {
	Name    string
	Base    uint32
	Length  uint32
	Handler Handler
}

func (r Region) contains(addr uint32) bool {
	return addr >= r.Base && addr < r.Base+r.Length
}

// Bus routes CPU memory transactions to the region covering the target
// address. The region table is built once at startup (see NewBus) and
// never mutated afterwards, matching the "static invariant" of spec §3.
type Bus struct {
	regions []Region
}

// NewBus validates that no two regions overlap and builds a Bus from them.
// Overlap is a host-setup failure, not a runtime condition, so it is
// reported as an error rather than deferred to a panic.
func NewBus(regions []Region) (*Bus, error) {
	for i := 0; i < len(regions); i++ {
		a := regions[i]
		aEnd := a.Base + a.Length
		for j := i + 1; j < len(regions); j++ {
			b := regions[j]
			bEnd := b.Base + b.Length
			if a.Base < bEnd && b.Base < aEnd {
				return nil, faults.New(faults.RegionOverlap, "bus: region %q [%#08x-%#08x) overlaps region %q [%#08x-%#08x)",
					a.Name, a.Base, aEnd, b.Name, b.Base, bEnd)
			}
		}
	}
	return &Bus{regions: append([]Region(nil), regions...)}, nil
}

func (b *Bus) find(addr uint32) *Region {
	for i := range b.regions {
		if b.regions[i].contains(addr) {
			return &b.regions[i]
		}
	}
	return nil
}

// Read returns the zero-extended value at addr for the given width.
// Addresses that hit no region return zero (spec §4.10: unmapped reads
// never fault).
func (b *Bus) Read(addr uint32, width Width) uint32 {
	r := b.find(addr)
	if r == nil {
		return 0
	}
	offset := addr - r.Base

	switch width {
	case Byte:
		if bh, ok := r.Handler.(ByteHandler); ok {
			return uint32(bh.Read8(offset))
		}
		return readByteFromWord(r.Handler, offset)
	case Half:
		if hh, ok := r.Handler.(HalfHandler); ok {
			return uint32(hh.Read16(offset))
		}
		return readHalfFromWord(r.Handler, offset)
	default:
		return r.Handler.Read32(alignDown4(offset))
	}
}

// Write commits val (only the low width*8 bits are meaningful) to addr.
// Addresses that hit no region are silently dropped (spec §4.10).
func (b *Bus) Write(addr uint32, width Width, val uint32) {
	r := b.find(addr)
	if r == nil {
		return
	}
	offset := addr - r.Base

	switch width {
	case Byte:
		if bh, ok := r.Handler.(ByteHandler); ok {
			bh.Write8(offset, uint8(val))
			return
		}
		writeByteIntoWord(r.Handler, offset, uint8(val))
	case Half:
		if hh, ok := r.Handler.(HalfHandler); ok {
			hh.Write16(offset, uint16(val))
			return
		}
		writeHalfIntoWord(r.Handler, offset, uint16(val))
	default:
		r.Handler.Write32(alignDown4(offset), val)
	}
}

// Regions exposes the routing table for debugger/diagnostic use (e.g.
// internal/busgraph). The slice is a copy; mutating it has no effect on
// the bus.
func (b *Bus) Regions() []Region {
	return append([]Region(nil), b.regions...)
}

func alignDown4(offset uint32) uint32 {
	return offset &^ 3
}

// readByteFromWord implements the generic "narrower reads hit the low
// byte[s]" fallback for handlers that only define 32-bit access (spec
// §4.2, and concretely the ATA register file at 4-byte stride).
func readByteFromWord(h Handler, offset uint32) uint32 {
	word := h.Read32(alignDown4(offset))
	shift := (offset & 3) * 8
	return (word >> shift) & 0xFF
}

func readHalfFromWord(h Handler, offset uint32) uint32 {
	word := h.Read32(alignDown4(offset))
	shift := (offset & 2) * 8
	return (word >> shift) & 0xFFFF
}

func writeByteIntoWord(h Handler, offset uint32, val uint8) {
	base := alignDown4(offset)
	word := h.Read32(base)
	shift := (offset & 3) * 8
	word = (word &^ (0xFF << shift)) | (uint32(val) << shift)
	h.Write32(base, word)
}

func writeHalfIntoWord(h Handler, offset uint32, val uint16) {
	base := alignDown4(offset)
	word := h.Read32(base)
	shift := (offset & 2) * 8
	word = (word &^ (0xFFFF << shift)) | (uint32(val) << shift)
	h.Write32(base, word)
}
