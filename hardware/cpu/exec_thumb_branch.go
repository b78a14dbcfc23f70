// This file is part of this software.

package cpu

// execThumbConditionalBranch implements format 16: Bcond label. Unlike
// every other Thumb format, this one is conditional, carrying the same
// 4-bit condition field ARM uses (cond 14/15 are reserved for undefined
// and SWI and never reach here — see executeThumb's dispatch order).
func (c *CPU) execThumbConditionalBranch(opcode uint16) {
	cond := uint32((opcode >> 8) & 0xF)
	if !c.checkCondition(cond) {
		return
	}
	offset := int32(int8(opcode&0xFF)) << 1
	target := c.readReg(15) + uint32(offset)
	c.writeReg(15, target)
}

// execThumbUnconditionalBranch implements format 18: B label, with an
// 11-bit signed word-pair offset.
func (c *CPU) execThumbUnconditionalBranch(opcode uint16) {
	offset := signExtend11(uint32(opcode&0x7FF)) << 1
	target := c.readReg(15) + uint32(offset)
	c.writeReg(15, target)
}

func signExtend11(v uint32) int32 {
	if v&0x400 != 0 {
		return int32(v | 0xFFFFF800)
	}
	return int32(v)
}

// execThumbLongBranchLink implements format 19: BL label, split across two
// 16-bit instructions distinguished by bit 11. The first half (H=0) stages
// the upper 11 bits of the offset into LR; the second half (H=1) combines
// it with its own 11 bits, jumps, and sets LR to the return address with
// bit 0 set to keep Thumb state on return.
func (c *CPU) execThumbLongBranchLink(opcode uint16) {
	high := opcode&0x0800 != 0
	offset := uint32(opcode & 0x7FF)

	if !high {
		ext := signExtend11(offset) << 12
		c.writeReg(14, c.readReg(15)+uint32(ext))
		return
	}

	lr := c.readReg(14)
	target := lr + offset<<1
	nextInstr := c.pc + 2 // pc still holds this instruction's own address
	c.writeReg(14, nextInstr|1)
	c.writeReg(15, target)
}
