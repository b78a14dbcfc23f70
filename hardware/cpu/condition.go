// This file is part of this software.

package cpu

// checkCondition evaluates one of the 16 ARM condition codes against the
// current CPSR flags (spec §4.1). Code 0b1111 ("never") is deprecated by
// the architecture; this implementation treats it as always-false rather
// than panicking, matching how real ARMv4T silicon of this era behaves.
func (c *CPU) checkCondition(cond uint32) bool {
	n, z, cy, v := c.regs.cpsr.NZCV()

	switch cond {
	case 0x0: // EQ
		return z
	case 0x1: // NE
		return !z
	case 0x2: // CS/HS
		return cy
	case 0x3: // CC/LO
		return !cy
	case 0x4: // MI
		return n
	case 0x5: // PL
		return !n
	case 0x6: // VS
		return v
	case 0x7: // VC
		return !v
	case 0x8: // HI
		return cy && !z
	case 0x9: // LS
		return !cy || z
	case 0xA: // GE
		return n == v
	case 0xB: // LT
		return n != v
	case 0xC: // GT
		return !z && n == v
	case 0xD: // LE
		return z || n != v
	case 0xE: // AL
		return true
	default: // 0xF, NV
		return false
	}
}
