// This file is part of this software.

package cpu

// readWordRotated implements the ARMv4 "unaligned 32-bit read rotates"
// behaviour pinned by spec §8: an LDR from an address that isn't a
// multiple of 4 reads the aligned word containing it and rotates the
// result right by 8*(addr&3).
func (c *CPU) readWordRotated(addr uint32) uint32 {
	word := c.mem.Read(addr&^3, Word)
	rot := (addr & 3) * 8
	if rot == 0 {
		return word
	}
	v, _ := ror(word, rot, false)
	return v
}

// offsetARM computes the single-data-transfer offset: either a 12-bit
// immediate or a shifted register, per bit 25 of the instruction.
func (c *CPU) offsetARM(opcode uint32) uint32 {
	if opcode&0x02000000 == 0 {
		return opcode & 0xFFF
	}
	rm := opcode & 0xF
	st := shiftType((opcode >> 5) & 0x3)
	amount := (opcode >> 7) & 0x1F
	v, _ := barrelShift(st, c.readReg(rm), amount, c.regs.cpsr.C(), true)
	return v
}

// execSingleDataTransfer implements LDR/STR (word and byte), covering
// pre/post indexing, up/down, and base-register writeback (spec §4.2,
// §4.1).
func (c *CPU) execSingleDataTransfer(opcode uint32) {
	rn := (opcode >> 16) & 0xF
	rd := (opcode >> 12) & 0xF
	load := opcode&0x00100000 != 0
	byteAccess := opcode&0x00400000 != 0
	up := opcode&0x00800000 != 0
	pre := opcode&0x01000000 != 0
	writeback := opcode&0x00200000 != 0

	offset := c.offsetARM(opcode)
	base := c.readReg(rn)

	addr := base
	if pre {
		if up {
			addr = base + offset
		} else {
			addr = base - offset
		}
	}

	if load {
		var val uint32
		if byteAccess {
			val = c.mem.Read(addr, Byte)
		} else {
			val = c.readWordRotated(addr)
		}
		// writeback/post-index happens before the register write so that a
		// load into Rn (with Rn==Rd) ends up holding the loaded value, not
		// the written-back address, matching architecture behaviour.
		c.applyWriteback(rn, base, offset, up, pre, writeback)
		c.writeReg(rd, val)
	} else {
		val := c.readReg(rd)
		if byteAccess {
			c.mem.Write(addr, Byte, val&0xFF)
		} else {
			c.mem.Write(addr&^3, Word, val)
		}
		c.applyWriteback(rn, base, offset, up, pre, writeback)
	}
}

func (c *CPU) applyWriteback(rn, base, offset uint32, up, pre, writeback bool) {
	if pre {
		if writeback {
			if up {
				c.writeReg(rn, base+offset)
			} else {
				c.writeReg(rn, base-offset)
			}
		}
		return
	}
	// post-indexed: the base register always updates to base+-offset,
	// regardless of the writeback bit (which is reinterpreted as
	// privileged/unprivileged access in post-indexed mode — not modelled).
	if up {
		c.writeReg(rn, base+offset)
	} else {
		c.writeReg(rn, base-offset)
	}
}

// execHalfwordTransfer implements LDRH/STRH/LDRSB/LDRSH and their
// immediate-offset forms.
func (c *CPU) execHalfwordTransfer(opcode uint32) {
	rn := (opcode >> 16) & 0xF
	rd := (opcode >> 12) & 0xF
	load := opcode&0x00100000 != 0
	up := opcode&0x00800000 != 0
	pre := opcode&0x01000000 != 0
	writeback := opcode&0x00200000 != 0
	immediate := opcode&0x00400000 != 0

	var offset uint32
	if immediate {
		offset = ((opcode>>8)&0xF)<<4 | (opcode & 0xF)
	} else {
		offset = c.readReg(opcode & 0xF)
	}

	base := c.readReg(rn)
	addr := base
	if pre {
		if up {
			addr = base + offset
		} else {
			addr = base - offset
		}
	}

	sh := (opcode >> 5) & 0x3

	if load {
		var val uint32
		switch sh {
		case 0b01: // unsigned halfword
			val = uint32(c.readHalfRotated(addr))
		case 0b10: // signed byte
			val = uint32(int32(int8(c.mem.Read(addr, Byte))))
		case 0b11: // signed halfword
			val = uint32(int32(int16(c.readHalfRotated(addr))))
		}
		c.applyWriteback(rn, base, offset, up, pre, writeback)
		c.writeReg(rd, val)
	} else {
		c.mem.Write(addr&^1, Half, c.readReg(rd)&0xFFFF)
		c.applyWriteback(rn, base, offset, up, pre, writeback)
	}
}

// readHalfRotated mirrors readWordRotated for halfword accesses: an
// unaligned halfword read rotates the aligned halfword by 8 bits.
func (c *CPU) readHalfRotated(addr uint32) uint16 {
	half := uint16(c.mem.Read(addr&^1, Half))
	if addr&1 != 0 {
		return half>>8 | half<<8
	}
	return half
}

// execBlockDataTransfer implements LDM/STM, including the S-bit
// user-bank access and the "empty register list is UNPREDICTABLE; treat
// as no-op" rule from spec §4.1.
func (c *CPU) execBlockDataTransfer(opcode uint32) {
	rn := (opcode >> 16) & 0xF
	load := opcode&0x00100000 != 0
	writeback := opcode&0x00200000 != 0
	sBit := opcode&0x00400000 != 0
	up := opcode&0x00800000 != 0
	pre := opcode&0x01000000 != 0
	list := opcode & 0xFFFF

	if list == 0 {
		return // UNPREDICTABLE; treated as no-op per spec §4.1
	}

	count := 0
	for i := 0; i < 16; i++ {
		if list&(1<<i) != 0 {
			count++
		}
	}

	base := c.readReg(rn)
	var start uint32
	if up {
		start = base
	} else {
		start = base - uint32(count)*4
	}

	addr := start
	if pre == up {
		addr += 4
	}

	// S-bit with a register list that does not include r15: the transfer
	// uses the User-mode register bank regardless of current mode.
	useUserBank := sBit && (!load || list&(1<<15) == 0)
	curMode := c.regs.mode()

	for i := 0; i < 16; i++ {
		if list&(1<<i) == 0 {
			continue
		}
		n := uint32(i)

		if useUserBank && curMode != ModeUser && curMode != ModeSystem {
			c.regs.setMode(ModeUser)
		}

		if load {
			val := c.mem.Read(addr&^3, Word)
			if n == 15 {
				c.writeReg(15, val&^1)
			} else {
				c.regs.r[n] = val
			}
		} else {
			c.mem.Write(addr&^3, Word, c.readReg(n))
		}

		if useUserBank && curMode != ModeUser && curMode != ModeSystem {
			c.regs.setMode(curMode)
		}

		addr += 4
	}

	if sBit && load && list&(1<<15) != 0 {
		if spsr, ok := c.SPSR(); ok {
			c.SetCPSR(spsr)
		}
	}

	if writeback {
		if up {
			c.writeReg(rn, base+uint32(count)*4)
		} else {
			c.writeReg(rn, base-uint32(count)*4)
		}
	}
}
