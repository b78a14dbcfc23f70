// This file is part of this software.

package bus

// DebugRead reads a single byte for debugger/inspection purposes. It goes
// through the same routing as Read but is named separately so call sites
// make it clear the access is not part of the emulated machine's own
// instruction stream (no cycle accounting, no side effects beyond what the
// underlying handler already does for any read).
func (b *Bus) DebugRead(addr uint32) uint8 {
	return uint8(b.Read(addr, Byte))
}

// DebugWrite writes a single byte for debugger/inspection purposes.
func (b *Bus) DebugWrite(addr uint32, val uint8) {
	b.Write(addr, Byte, uint32(val))
}
