// This file is part of this software.

package cpu

// execThumbLoadStoreRegisterOffset implements format 7: LDR/STR/LDRB/STRB
// Rd, [Rb, Ro].
func (c *CPU) execThumbLoadStoreRegisterOffset(opcode uint16) {
	load := opcode&0x0800 != 0
	byteAccess := opcode&0x0400 != 0
	ro := uint32((opcode >> 6) & 0x7)
	rb := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	addr := c.readReg(rb) + c.readReg(ro)

	if load {
		var val uint32
		if byteAccess {
			val = c.mem.Read(addr, Byte)
		} else {
			val = c.readWordRotated(addr)
		}
		c.writeReg(rd, val)
	} else {
		if byteAccess {
			c.mem.Write(addr, Byte, c.readReg(rd)&0xFF)
		} else {
			c.mem.Write(addr&^3, Word, c.readReg(rd))
		}
	}
}

// execThumbLoadStoreSignExtended implements format 8: LDRH/LDSB/LDSH/STRH
// Rd, [Rb, Ro].
func (c *CPU) execThumbLoadStoreSignExtended(opcode uint16) {
	hFlag := opcode&0x0800 != 0
	sFlag := opcode&0x0400 != 0
	ro := uint32((opcode >> 6) & 0x7)
	rb := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	addr := c.readReg(rb) + c.readReg(ro)

	switch {
	case !sFlag && !hFlag: // STRH
		c.mem.Write(addr&^1, Half, c.readReg(rd)&0xFFFF)
	case !sFlag && hFlag: // LDRH
		c.writeReg(rd, uint32(c.readHalfRotated(addr)))
	case sFlag && !hFlag: // LDSB
		c.writeReg(rd, uint32(int32(int8(c.mem.Read(addr, Byte)))))
	case sFlag && hFlag: // LDSH
		c.writeReg(rd, uint32(int32(int16(c.readHalfRotated(addr)))))
	}
}

// execThumbLoadStoreImmediate implements format 9: LDR/STR/LDRB/STRB
// Rd, [Rb, #imm5].
func (c *CPU) execThumbLoadStoreImmediate(opcode uint16) {
	byteAccess := opcode&0x1000 != 0
	load := opcode&0x0800 != 0
	imm := uint32((opcode >> 6) & 0x1F)
	rb := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	if !byteAccess {
		imm <<= 2
	}
	addr := c.readReg(rb) + imm

	if load {
		var val uint32
		if byteAccess {
			val = c.mem.Read(addr, Byte)
		} else {
			val = c.readWordRotated(addr)
		}
		c.writeReg(rd, val)
	} else {
		if byteAccess {
			c.mem.Write(addr, Byte, c.readReg(rd)&0xFF)
		} else {
			c.mem.Write(addr&^3, Word, c.readReg(rd))
		}
	}
}

// execThumbLoadStoreHalfword implements format 10: LDRH/STRH
// Rd, [Rb, #imm5*2].
func (c *CPU) execThumbLoadStoreHalfword(opcode uint16) {
	load := opcode&0x0800 != 0
	imm := uint32((opcode>>6)&0x1F) << 1
	rb := uint32((opcode >> 3) & 0x7)
	rd := uint32(opcode & 0x7)

	addr := c.readReg(rb) + imm

	if load {
		c.writeReg(rd, uint32(c.readHalfRotated(addr)))
	} else {
		c.mem.Write(addr&^1, Half, c.readReg(rd)&0xFFFF)
	}
}

// execThumbSPRelative implements format 11: LDR/STR Rd, [SP, #imm8*4].
func (c *CPU) execThumbSPRelative(opcode uint16) {
	load := opcode&0x0800 != 0
	rd := uint32((opcode >> 8) & 0x7)
	imm := uint32(opcode&0xFF) << 2

	addr := c.readReg(13) + imm

	if load {
		c.writeReg(rd, c.readWordRotated(addr))
	} else {
		c.mem.Write(addr&^3, Word, c.readReg(rd))
	}
}

// execThumbLoadAddress implements format 12: ADD Rd, PC|SP, #imm8*4.
func (c *CPU) execThumbLoadAddress(opcode uint16) {
	usesSP := opcode&0x0800 != 0
	rd := uint32((opcode >> 8) & 0x7)
	imm := uint32(opcode&0xFF) << 2

	var base uint32
	if usesSP {
		base = c.readReg(13)
	} else {
		base = c.readReg(15) &^ 3
	}
	c.writeReg(rd, base+imm)
}

// execThumbAddSP implements format 13: ADD SP, #+/-imm7*4.
func (c *CPU) execThumbAddSP(opcode uint16) {
	negative := opcode&0x80 != 0
	imm := uint32(opcode&0x7F) << 2

	sp := c.readReg(13)
	if negative {
		c.writeReg(13, sp-imm)
	} else {
		c.writeReg(13, sp+imm)
	}
}
