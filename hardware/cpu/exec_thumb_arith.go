// This file is part of this software.

package cpu

// execThumbMoveShifted implements format 1: LSL/LSR/ASR Rd, Rs, #imm5.
func (c *CPU) execThumbMoveShifted(opcode uint16) {
	op := (opcode >> 11) & 0x3
	amount := uint32((opcode >> 6) & 0x1F)
	rs := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	value := c.readReg(rs)
	carryIn := c.regs.cpsr.C()

	var result uint32
	var carryOut bool
	switch op {
	case 0: // LSL
		result, carryOut = lsl(value, amount, carryIn)
	case 1: // LSR
		if amount == 0 {
			amount = 32
		}
		result, carryOut = lsr(value, amount, carryIn)
	case 2: // ASR
		if amount == 0 {
			amount = 32
		}
		result, carryOut = asr(value, amount, carryIn)
	}

	c.writeReg(rd, result)
	c.regs.cpsr = c.regs.cpsr.withN(result&0x80000000 != 0).withZ(result == 0).withC(carryOut)
}

// execThumbAddSubtract implements format 2: ADD/SUB Rd, Rs, Rn|#imm3.
func (c *CPU) execThumbAddSubtract(opcode uint16) {
	immediate := opcode&0x0400 != 0
	subtract := opcode&0x0200 != 0
	rnOrImm := uint32((opcode >> 6) & 0x7)
	rs := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	var operand uint32
	if immediate {
		operand = rnOrImm
	} else {
		operand = c.readReg(rnOrImm)
	}

	rsVal := c.readReg(rs)

	var result uint32
	var carryOut, overflow bool
	if subtract {
		result, carryOut, overflow = subWithFlags(rsVal, operand)
	} else {
		result, carryOut, overflow = addWithFlags(rsVal, operand, 0)
	}

	c.writeReg(rd, result)
	c.regs.cpsr = c.regs.cpsr.withN(result&0x80000000 != 0).withZ(result == 0).withC(carryOut).withV(overflow)
}

// execThumbImmediate implements format 3: MOV/CMP/ADD/SUB Rd, #imm8.
func (c *CPU) execThumbImmediate(opcode uint16) {
	op := (opcode >> 11) & 0x3
	rd := uint32((opcode >> 8) & 0x7)
	imm := uint32(opcode & 0xFF)

	cur := c.readReg(rd)

	var result uint32
	var carryOut, overflow bool
	var writesResult = true

	switch op {
	case 0: // MOV
		result = imm
		carryOut = c.regs.cpsr.C()
	case 1: // CMP
		result, carryOut, overflow = subWithFlags(cur, imm)
		writesResult = false
	case 2: // ADD
		result, carryOut, overflow = addWithFlags(cur, imm, 0)
	case 3: // SUB
		result, carryOut, overflow = subWithFlags(cur, imm)
	}

	if writesResult {
		c.writeReg(rd, result)
	}

	c.regs.cpsr = c.regs.cpsr.withN(result&0x80000000 != 0).withZ(result == 0)
	if op == 0 {
		c.regs.cpsr = c.regs.cpsr.withC(carryOut)
	} else {
		c.regs.cpsr = c.regs.cpsr.withC(carryOut).withV(overflow)
	}
}

// thumbALUOp enumerates format 4's 16 ALU operations, which reuse the
// ARM ALU opcode mnemonics but a different encoding.
const (
	tALUAnd = iota
	tALUEor
	tALULsl
	tALULsr
	tALUAsr
	tALUAdc
	tALUSbc
	tALURor
	tALUTst
	tALUNeg
	tALUCmp
	tALUCmn
	tALUOrr
	tALUMul
	tALUBic
	tALUMvn
)

// execThumbALU implements format 4: a two-operand ALU instruction between
// two low registers.
func (c *CPU) execThumbALU(opcode uint16) {
	op := (opcode >> 6) & 0xF
	rs := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	dst := c.readReg(rd)
	src := c.readReg(rs)
	carryIn := c.regs.cpsr.C()

	var result uint32
	var carryOut = carryIn
	var overflow = c.regs.cpsr.V()
	writesResult := true
	updatesCV := false

	switch op {
	case tALUAnd:
		result = dst & src
	case tALUEor:
		result = dst ^ src
	case tALULsl:
		amount := src & 0xFF
		result, carryOut = lsl(dst, amount, carryIn)
	case tALULsr:
		amount := src & 0xFF
		result, carryOut = lsr(dst, amount, carryIn)
	case tALUAsr:
		amount := src & 0xFF
		result, carryOut = asr(dst, amount, carryIn)
	case tALUAdc:
		result, carryOut, overflow = addWithFlags(dst, src, carryBit(carryIn))
		updatesCV = true
	case tALUSbc:
		result, carryOut, overflow = sbcWithFlags(dst, src, carryIn)
		updatesCV = true
	case tALURor:
		amount := src & 0xFF
		result, carryOut = ror(dst, amount, carryIn)
	case tALUTst:
		result = dst & src
		writesResult = false
	case tALUNeg:
		result, carryOut, overflow = subWithFlags(0, src)
		updatesCV = true
	case tALUCmp:
		result, carryOut, overflow = subWithFlags(dst, src)
		writesResult = false
		updatesCV = true
	case tALUCmn:
		result, carryOut, overflow = addWithFlags(dst, src, 0)
		writesResult = false
		updatesCV = true
	case tALUOrr:
		result = dst | src
	case tALUMul:
		result = dst * src
		// C/V UNPREDICTABLE after MUL; left unchanged (spec §4.1).
	case tALUBic:
		result = dst &^ src
	case tALUMvn:
		result = ^src
	}

	if writesResult {
		c.writeReg(rd, result)
	}

	c.regs.cpsr = c.regs.cpsr.withN(result&0x80000000 != 0).withZ(result == 0)
	switch op {
	case tALULsl, tALULsr, tALUAsr, tALURor:
		c.regs.cpsr = c.regs.cpsr.withC(carryOut)
	default:
		if updatesCV {
			c.regs.cpsr = c.regs.cpsr.withC(carryOut).withV(overflow)
		}
	}
}
