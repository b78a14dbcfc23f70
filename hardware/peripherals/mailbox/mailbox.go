// This file is part of this software.

// Package mailbox implements the inter-core mailbox registers at
// 0x60001010/0x60001020 (spec §9). This emulator models a single running
// core (the COP target for Rockbox-class firmware is never executed), so
// the "other core" side of each mailbox always reads as empty.
package mailbox

// Register offsets, relative to the mailbox region base at 0x60001010
// (spec §9): the primary core's mailbox and the COP's, each a single
// bit-set register where writes set bits. Reading the primary core's
// mailbox returns and clears it; the COP's always reads zero.
const (
	RegCPUMailbox = 0x00 // 0x60001010
	RegCOPMailbox = 0x10 // 0x60001020
)

// Mailbox holds the two single-core-direction bit sets.
type Mailbox struct {
	cpuBits uint32 // set by COP, read (and cleared) by CPU
	copBits uint32 // set by CPU, read by COP — never actually drained, since no COP runs
}

// New creates an empty mailbox pair.
func New() *Mailbox { return &Mailbox{} }

// Read32 implements bus.Handler. Reading the primary core's mailbox clears
// it (spec §9: "reads from the 'other' core return zero and clear the
// bit"); reading the COP's mailbox from the primary core's bus access path
// is not a real code path, but is defined as zero for safety.
func (m *Mailbox) Read32(offset uint32) uint32 {
	switch offset {
	case RegCPUMailbox:
		v := m.cpuBits
		m.cpuBits = 0
		return v
	case RegCOPMailbox:
		return 0
	default:
		return 0
	}
}

// Write32 implements bus.Handler: writes set bits in the target mailbox
// (spec §9: "writes set the bit").
func (m *Mailbox) Write32(offset uint32, val uint32) {
	switch offset {
	case RegCPUMailbox:
		m.cpuBits |= val
	case RegCOPMailbox:
		m.copBits |= val
	}
}
