// This file is part of this software.

// Package syscon implements the small family of register blocks this
// emulator does not need to give real behaviour — system control, cache
// control, device-init, GPO32, proc-ID — but which firmware probes during
// boot and expects to read back coherently (spec §4.2's region table).
// Each is a plain read/write word array: no side effects, no interrupts.
package syscon

// Block is a generic little-endian word register file: reads return
// whatever was last written (or zero), writes simply store. This backs
// every peripheral named in spec §4.2 whose semantics the spec does not
// pin down beyond "exists at this address range".
type Block struct {
	words map[uint32]uint32
}

// NewBlock creates an empty register block.
func NewBlock() *Block {
	return &Block{words: make(map[uint32]uint32)}
}

// Read32 implements bus.Handler.
func (b *Block) Read32(offset uint32) uint32 {
	return b.words[offset&^3]
}

// Write32 implements bus.Handler.
func (b *Block) Write32(offset uint32, val uint32) {
	b.words[offset&^3] = val
}

// ProcID is the fixed processor-identification register read by firmware
// during early boot to distinguish the primary core from the COP.
type ProcID struct {
	ID uint32
}

// NewProcID creates a proc-ID register reporting id (conventionally 0 for
// the primary core).
func NewProcID(id uint32) *ProcID {
	return &ProcID{ID: id}
}

// Read32 implements bus.Handler.
func (p *ProcID) Read32(offset uint32) uint32 {
	if offset == 0 {
		return p.ID
	}
	return 0
}

// Write32 implements bus.Handler; proc-ID is read-only.
func (p *ProcID) Write32(offset uint32, val uint32) {}
