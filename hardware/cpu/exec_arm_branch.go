// This file is part of this software.

package cpu

// execBranch implements B and BL: a PC-relative branch using a signed
// 24-bit word offset (sign-extended, then shifted left 2).
func (c *CPU) execBranch(opcode uint32) {
	link := opcode&0x01000000 != 0
	offset := signExtend24(opcode&0xFFFFFF) << 2

	if link {
		c.writeReg(14, c.pc+4)
	}

	target := c.readReg(15) + uint32(offset)
	c.writeReg(15, target)
}

func signExtend24(v uint32) int32 {
	if v&0x00800000 != 0 {
		return int32(v | 0xFF000000)
	}
	return int32(v)
}
