// This file is part of this software.

package cpu

// executeARM decodes and executes one 32-bit ARM instruction. The
// classification follows the standard ARMv4T bit-pattern tree (spec
// §4.1); each case is handed off to a dedicated exec method.
func (c *CPU) executeARM(opcode uint32) {
	cond := opcode >> 28
	if !c.checkCondition(cond) {
		return
	}

	switch {
	case opcode&0x0FFFFFF0 == 0x012FFF10: // BX Rn
		c.execBranchExchange(opcode, false)
	case opcode&0x0FFFFFF0 == 0x012FFF30: // BLX Rn
		c.execBranchExchange(opcode, true)
	case opcode&0x0FB00FF0 == 0x01000090: // SWP/SWPB
		c.execSwap(opcode)
	case opcode&0x0F8000F0 == 0x00800090: // UMULL/UMLAL/SMULL/SMLAL
		c.execMultiplyLong(opcode)
	case opcode&0x0FC000F0 == 0x00000090: // MUL/MLA
		c.execMultiply(opcode)
	case opcode&0x0E000090 == 0x00000090 && opcode&0x00000060 != 0: // halfword/signed transfers
		c.execHalfwordTransfer(opcode)
	case opcode&0x0FBF0FFF == 0x010F0000: // MRS
		c.execMRS(opcode)
	case opcode&0x0FBFFFF0 == 0x0129F000 || opcode&0x0FBFF000 == 0x0328F000: // MSR
		c.execMSR(opcode)
	case opcode&0x0C000000 == 0x00000000: // data processing
		c.execDataProcessing(opcode)
	case opcode&0x0C000000 == 0x04000000: // single data transfer / undefined
		if opcode&0x02000010 == 0x02000010 {
			c.RaiseUndefined()
			return
		}
		c.execSingleDataTransfer(opcode)
	case opcode&0x0E000000 == 0x08000000: // block data transfer
		c.execBlockDataTransfer(opcode)
	case opcode&0x0E000000 == 0x0A000000: // branch / branch with link
		c.execBranch(opcode)
	case opcode&0x0F000000 == 0x0F000000: // SWI
		c.RaiseSWI()
	default: // coprocessor instructions: no coprocessor is modelled (spec §1 non-goals)
		c.RaiseUndefined()
	}
}

// operand2ARM decodes the shifter operand of a data-processing instruction.
func (c *CPU) operand2ARM(opcode uint32) (value uint32, carryOut bool) {
	carryIn := c.regs.cpsr.C()

	if opcode&0x02000000 != 0 { // immediate
		imm := opcode & 0xFF
		rotate := (opcode >> 8) & 0xF * 2
		if rotate == 0 {
			return imm, carryIn
		}
		return ror(imm, rotate, carryIn)
	}

	rm := opcode & 0xF
	st := shiftType((opcode >> 5) & 0x3)

	if opcode&0x10 != 0 { // register-specified shift amount
		rs := (opcode >> 8) & 0xF
		amount := c.readReg(rs) & 0xFF
		value := c.readReg(rm)
		if amount == 0 {
			return value, carryIn
		}
		return barrelShift(st, value, amount, carryIn, false)
	}

	amount := (opcode >> 7) & 0x1F
	value = c.readReg(rm)
	return barrelShift(st, value, amount, carryIn, true)
}
