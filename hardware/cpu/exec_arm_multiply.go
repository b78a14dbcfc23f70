// This file is part of this software.

package cpu

// execMultiply implements MUL/MLA. Spec §4.1: "Multiplies set N/Z when the
// S-bit is set; C/V are UNPREDICTABLE after MUL — pick a deterministic
// policy (leave unchanged) and document it." We leave C and V untouched.
func (c *CPU) execMultiply(opcode uint32) {
	rd := (opcode >> 16) & 0xF
	rn := (opcode >> 12) & 0xF
	rs := (opcode >> 8) & 0xF
	rm := opcode & 0xF
	accumulate := opcode&0x00200000 != 0
	s := opcode&0x00100000 != 0

	result := c.readReg(rm) * c.readReg(rs)
	if accumulate {
		result += c.readReg(rn)
	}
	c.writeReg(rd, result)

	if s {
		c.regs.cpsr = c.regs.cpsr.withN(result&0x80000000 != 0).withZ(result == 0)
	}
}

// execMultiplyLong implements UMULL/UMLAL/SMULL/SMLAL.
func (c *CPU) execMultiplyLong(opcode uint32) {
	rdHi := (opcode >> 16) & 0xF
	rdLo := (opcode >> 12) & 0xF
	rs := (opcode >> 8) & 0xF
	rm := opcode & 0xF
	signed := opcode&0x00400000 != 0
	accumulate := opcode&0x00200000 != 0
	s := opcode&0x00100000 != 0

	var product uint64
	if signed {
		product = uint64(int64(int32(c.readReg(rm))) * int64(int32(c.readReg(rs))))
	} else {
		product = uint64(c.readReg(rm)) * uint64(c.readReg(rs))
	}

	if accumulate {
		acc := uint64(c.readReg(rdHi))<<32 | uint64(c.readReg(rdLo))
		product += acc
	}

	hi := uint32(product >> 32)
	lo := uint32(product)
	c.writeReg(rdLo, lo)
	c.writeReg(rdHi, hi)

	if s {
		c.regs.cpsr = c.regs.cpsr.withN(hi&0x80000000 != 0).withZ(product == 0)
	}
}

// execSwap implements SWP/SWPB: an atomic (from the single-threaded
// interpreter's point of view, trivially atomic) read-then-write of a
// memory location.
func (c *CPU) execSwap(opcode uint32) {
	rn := (opcode >> 16) & 0xF
	rd := (opcode >> 12) & 0xF
	rm := opcode & 0xF
	byteSwap := opcode&0x00400000 != 0

	addr := c.readReg(rn)
	if byteSwap {
		old := c.mem.Read(addr, Byte)
		c.mem.Write(addr, Byte, c.readReg(rm)&0xFF)
		c.writeReg(rd, old)
	} else {
		old := c.readWordRotated(addr)
		c.mem.Write(addr, Word, c.readReg(rm))
		c.writeReg(rd, old)
	}
}

// execBranchExchange implements BX/BLX Rn: copy bit 0 of Rn into CPSR.T
// (switching instruction sets, spec §4.1) and branch to Rn with that bit
// cleared.
func (c *CPU) execBranchExchange(opcode uint32, link bool) {
	rn := opcode & 0xF
	target := c.readReg(rn)

	if link {
		c.writeReg(14, c.pc+4)
	}

	thumb := target&1 != 0
	c.regs.cpsr = c.regs.cpsr.withT(thumb)
	if thumb {
		target &^= 1
	} else {
		target &^= 3
	}
	c.writeReg(15, target)
}
