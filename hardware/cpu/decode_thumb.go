// This file is part of this software.

package cpu

// executeThumb decodes and executes one 16-bit Thumb instruction,
// classifying it into one of the ~19 compact formats of the ARMv4T Thumb
// instruction set (spec §4.1). Thumb instructions are unconditional except
// for the dedicated conditional-branch format; all others always execute.
func (c *CPU) executeThumb(opcode uint16) {
	switch {
	case opcode&0xFF00 == 0xDF00: // format 17: SWI
		c.RaiseSWI()
	case opcode&0xFF00 == 0xDE00: // condition 14 in the branch format: undefined
		c.RaiseUndefined()
	case opcode&0xF000 == 0xF000: // format 19: long branch with link
		c.execThumbLongBranchLink(opcode)
	case opcode&0xF800 == 0xE000: // format 18: unconditional branch
		c.execThumbUnconditionalBranch(opcode)
	case opcode&0xF000 == 0xD000: // format 16: conditional branch
		c.execThumbConditionalBranch(opcode)
	case opcode&0xF600 == 0xB400: // format 14: push/pop
		c.execThumbPushPop(opcode)
	case opcode&0xFF00 == 0xB000: // format 13: add offset to SP
		c.execThumbAddSP(opcode)
	case opcode&0xF000 == 0xC000: // format 15: multiple load/store
		c.execThumbMultipleLoadStore(opcode)
	case opcode&0xF000 == 0x9000: // format 11: SP-relative load/store
		c.execThumbSPRelative(opcode)
	case opcode&0xF000 == 0xA000: // format 12: load address
		c.execThumbLoadAddress(opcode)
	case opcode&0xF000 == 0x8000: // format 10: load/store halfword
		c.execThumbLoadStoreHalfword(opcode)
	case opcode&0xE000 == 0x6000: // format 9: load/store immediate offset
		c.execThumbLoadStoreImmediate(opcode)
	case opcode&0xF200 == 0x5200: // format 8: load/store sign-extended
		c.execThumbLoadStoreSignExtended(opcode)
	case opcode&0xF200 == 0x5000: // format 7: load/store register offset
		c.execThumbLoadStoreRegisterOffset(opcode)
	case opcode&0xF800 == 0x4800: // format 6: PC-relative load
		c.execThumbPCRelativeLoad(opcode)
	case opcode&0xFC00 == 0x4400: // format 5: hi register ops / BX
		c.execThumbHiRegisterOps(opcode)
	case opcode&0xFC00 == 0x4000: // format 4: ALU operations
		c.execThumbALU(opcode)
	case opcode&0xE000 == 0x2000: // format 3: move/cmp/add/sub immediate
		c.execThumbImmediate(opcode)
	case opcode&0xE000 == 0x0000:
		if opcode&0x1800 == 0x1800 { // format 2: add/subtract
			c.execThumbAddSubtract(opcode)
		} else { // format 1: move shifted register
			c.execThumbMoveShifted(opcode)
		}
	default:
		c.RaiseUndefined()
	}
}
