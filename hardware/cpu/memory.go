// This file is part of this software.

package cpu

// Width mirrors bus.Width without importing the bus package, so that the
// cpu package has no dependency on the concrete bus implementation —
// only on the narrow interface it actually needs.
type Width uint32

const (
	Byte Width = 1
	Half Width = 2
	Word Width = 4
)

// Memory is the CPU's view of the system bus: zero-extended reads, commit
// writes, width-agnostic (spec §4.2).
type Memory interface {
	Read(addr uint32, width Width) uint32
	Write(addr uint32, width Width, val uint32)
}
